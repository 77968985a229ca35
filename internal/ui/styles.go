package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, derived from the current theme
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorOwe         color.Color
	ColorOwed        color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
)

// Header and footer styles
var (
	HeaderStyle     lipgloss.Style
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
	FooterSepStyle  lipgloss.Style
	FlashInfoStyle  lipgloss.Style
	FlashWarnStyle  lipgloss.Style
	FlashErrorStyle lipgloss.Style
	FlashOKStyle    lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Friend list styles
var (
	FriendRowStyle         lipgloss.Style
	FriendRowSelectedStyle lipgloss.Style
	FriendNameStyle        lipgloss.Style
	FriendAvatarStyle      lipgloss.Style
	BalanceOweStyle        lipgloss.Style
	BalanceOwedStyle       lipgloss.Style
	BalanceSettledStyle    lipgloss.Style
)

// Form styles
var (
	FormLabelStyle          lipgloss.Style
	FormValueStyle          lipgloss.Style
	FormDisabledStyle       lipgloss.Style
	ButtonStyle             lipgloss.Style
	ButtonFocusedStyle      lipgloss.Style
	InputFocusedMarkerStyle lipgloss.Style
)

func init() {
	regenerateStyles()
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorOwe = lipgloss.Color(t.Owe)
	ColorOwed = lipgloss.Color(t.Owed)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FooterSepStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	FlashInfoStyle = lipgloss.NewStyle().Foreground(ColorInfo)
	FlashWarnStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	FlashErrorStyle = lipgloss.NewStyle().Foreground(ColorOwe).Bold(true)
	FlashOKStyle = lipgloss.NewStyle().Foreground(ColorOwed)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	FriendRowStyle = lipgloss.NewStyle().
		Padding(0, 1)

	FriendRowSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(ColorText).
		Padding(0, 1)

	FriendNameStyle = lipgloss.NewStyle().
		Bold(true)

	FriendAvatarStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorSecondary).
		Padding(0, 1)

	BalanceOweStyle = lipgloss.NewStyle().Foreground(ColorOwe)
	BalanceOwedStyle = lipgloss.NewStyle().Foreground(ColorOwed)
	BalanceSettledStyle = lipgloss.NewStyle()

	FormLabelStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FormValueStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	FormDisabledStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	ButtonStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(ColorText).
		Background(ColorBorder)

	ButtonFocusedStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true).
		Foreground(ColorTextInverse).
		Background(ColorPrimary)

	InputFocusedMarkerStyle = lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
}
