// Package ui provides the views for the eatnsplit TUI.
//
// The layout is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├──────────────────────────┬──────────────────────────┤
//	│ Friend list              │                          │
//	│ [Add friend form]        │  [Split bill form]       │
//	│ [Add friend] / [Close]   │                          │
//	├──────────────────────────┴──────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// Views own only transient field text. Everything else is passed in by
// the app model on every update, and user actions are reported back
// through the callbacks each view is constructed with.
package ui
