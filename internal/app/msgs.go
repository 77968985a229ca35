package app

// ThemeSavedMsg is sent after the chosen theme is written to the config file
type ThemeSavedMsg struct {
	Theme string
	Err   error
}

// ClipboardWrittenMsg is sent after writing to the system clipboard
type ClipboardWrittenMsg struct {
	Err error
}

// NotificationSentMsg is sent after a desktop notification is delivered
type NotificationSentMsg struct {
	Err error
}
