// Package app wires the friend roster to the terminal UI.
//
// Model owns a friends.Roster and the ui components. Every key press is
// handled to completion, after which syncMounts mounts or unmounts the
// add friend and split bill forms so they mirror the roster.
package app
