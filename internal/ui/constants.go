// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidthRatio is the denominator for sidebar width (1/2 of total width)
	SidebarWidthRatio = 2

	// MinSidebarWidth keeps balance lines readable on narrow terminals
	MinSidebarWidth = 36

	// MinTerminalWidth and MinTerminalHeight clamp layout math
	MinTerminalWidth  = 40
	MinTerminalHeight = 10
)

// Form limits
const (
	// NameCharLimit is the character limit for the friend name input
	NameCharLimit = 64

	// ImageCharLimit is the character limit for the image URL input
	ImageCharLimit = 512

	// AmountCharLimit is the character limit for bill amount inputs
	AmountCharLimit = 16

	// FormInputWidth is the default width of form text inputs
	FormInputWidth = 30
)

// FlashDuration is how long a footer flash stays visible, in seconds
const FlashDuration = 4
