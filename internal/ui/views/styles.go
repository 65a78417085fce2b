package views

import (
	"github.com/charmbracelet/lipgloss"

	"tooldeck/internal/theme"
)

// Styles contains all the style definitions for the UI, built from one palette
type Styles struct {
	Colors theme.Colors

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Label        lipgloss.Style
	SearchBox    lipgloss.Style
	SearchActive lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Accent       lipgloss.Style

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Category     lipgloss.Style
	Name         lipgloss.Style
	Description  lipgloss.Style
	Link         lipgloss.Style
	NoLink       lipgloss.Style

	ErrorTitle lipgloss.Style
	ErrorBox   lipgloss.Style
	Empty      lipgloss.Style

	NoticeSuccess lipgloss.Style
	NoticeError   lipgloss.Style

	Popup        lipgloss.Style
	PopupTitle   lipgloss.Style
	PickerItem   lipgloss.Style
	PickerCursor lipgloss.Style
	Menu         lipgloss.Style
	Help         lipgloss.Style
}

// NewStyles creates the styles for c
func NewStyles(c theme.Colors) *Styles {
	accent := lipgloss.Color(c.Accent)
	primary := lipgloss.Color(c.TextPrimary)
	secondary := lipgloss.Color(c.TextSecondary)
	muted := lipgloss.Color(c.TextMuted)
	border := lipgloss.Color(c.Border)
	errorRed := lipgloss.Color("#ef4444")
	successGreen := lipgloss.Color("#10b981")

	return &Styles{
		Colors: c,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Subtitle: lipgloss.NewStyle().Foreground(secondary),
		Label:    lipgloss.NewStyle().Foreground(muted),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		SearchActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(muted),
		Accent: lipgloss.NewStyle().Foreground(accent),

		Card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(border).
			PaddingLeft(1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(accent).
			Background(lipgloss.Color(c.Selection())).
			PaddingLeft(1),
		Category:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		Name:        lipgloss.NewStyle().Foreground(primary).Bold(true),
		Description: lipgloss.NewStyle().Foreground(secondary),
		Link:        lipgloss.NewStyle().Foreground(accent).Underline(true),
		NoLink:      lipgloss.NewStyle().Foreground(muted).Italic(true),

		ErrorTitle: lipgloss.NewStyle().Bold(true).Foreground(errorRed),
		ErrorBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(errorRed).
			Padding(1, 3).
			Align(lipgloss.Center),
		Empty: lipgloss.NewStyle().Foreground(muted).Padding(2, 0).Align(lipgloss.Center),

		NoticeSuccess: lipgloss.NewStyle().Foreground(successGreen).Bold(true),
		NoticeError:   lipgloss.NewStyle().Foreground(errorRed).Bold(true),

		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),
		PopupTitle:   lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1),
		PickerItem:   lipgloss.NewStyle().Foreground(secondary),
		PickerCursor: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Menu: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(border).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Faint(true),
	}
}
