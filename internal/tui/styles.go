package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	accent  = lipgloss.Color("#7D56F4")
	green   = lipgloss.Color("#04B575")
	red     = lipgloss.Color("#FF5F5F")
	blue    = lipgloss.Color("#5FAFFF")
	yellow  = lipgloss.Color("#FFD75F")
	grey    = lipgloss.Color("#888888")
	darkest = lipgloss.Color("#666666")
)

var (
	// Banner box shown once at start-up
	BannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(green).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(green).
			Padding(0, 2)

	// Menu title box
	MenuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			Padding(0, 4)

	// Section headings inside the menu
	SectionStyle = lipgloss.NewStyle().
			Foreground(blue).
			Bold(true)

	// Header of listings and info cards
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(blue)

	PromptStyle = lipgloss.NewStyle().
			Foreground(yellow)

	DirStyle = lipgloss.NewStyle().
			Foreground(blue).
			Bold(true)

	ExecStyle = lipgloss.NewStyle().
			Foreground(green)

	SymlinkStyle = lipgloss.NewStyle().
			Foreground(accent)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(red).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(green).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(grey).
			MarginTop(1)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(darkest)

	// Label column of the info card
	LabelStyle = lipgloss.NewStyle().
			Foreground(grey).
			Width(13)
)

// NewHuhTheme returns the huh theme matching the styles above
func NewHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(accent)
	t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(grey)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(yellow)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.Option = t.Focused.Option.Foreground(lipgloss.Color("#DDDDDD"))
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(yellow)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(yellow)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(darkest)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
