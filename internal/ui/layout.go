package ui

// Layout holds the panel dimensions for one terminal size.
type Layout struct {
	Width         int
	Height        int
	ContentHeight int
	SidebarWidth  int
	PanelWidth    int
}

// NewLayout computes panel sizes for a width x height terminal.
func NewLayout(width, height int) Layout {
	width = max(width, MinTerminalWidth)
	height = max(height, MinTerminalHeight)

	sidebar := max(width/SidebarWidthRatio, MinSidebarWidth)
	sidebar = min(sidebar, width)

	return Layout{
		Width:         width,
		Height:        height,
		ContentHeight: height - HeaderHeight - FooterHeight,
		SidebarWidth:  sidebar,
		PanelWidth:    width - sidebar,
	}
}

// InnerWidth returns the usable width inside a bordered panel.
func InnerWidth(outer int) int {
	return max(outer-BorderSize, 0)
}

// InnerHeight returns the usable height inside a bordered panel.
func InnerHeight(outer int) int {
	return max(outer-BorderSize, 0)
}
