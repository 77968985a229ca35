// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/zhubert/eatnsplit/internal/logger"
)

// AppName is the title used for every notification.
const AppName = "eatnsplit"

// notifyFunc is swapped out in tests.
var notifyFunc = beeep.Notify

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifyFunc = fn
}

// ResetNotifier restores the beeep notifier.
func ResetNotifier() {
	notifyFunc = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("Sending notification", "title", title, "message", message)
	// Empty icon lets beeep use the platform default
	err := notifyFunc(title, message, "")
	if err != nil {
		log.Warn("Failed to send notification", "error", err)
	}
	return err
}

// FriendAdded announces a newly added friend.
func FriendAdded(name string) error {
	return Send(AppName, name+" was added to your friends")
}
