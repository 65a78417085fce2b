package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Overlay selects what is drawn over the page
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayCategory
	OverlayPalette
	OverlayContact
)

// Notice is a transient message under the list
type Notice struct {
	Text  string
	Error bool
}

// PickerOption is one row of a picker popup
type PickerOption struct {
	Label   string
	Swatch  []string // hex colours, palettes only
	Current bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Title    string
	Subtitle string
	Theme    string
	Palette  string

	HeaderSearch  string // rendered search box content
	SearchFocused bool
	CategoryLabel string

	Loading bool
	Spinner string
	Visible int
	Total   int

	Selected int
	Offset   int

	Notice *Notice
	Help   string

	MenuOpen    bool
	MenuSearch  string
	MenuFocused bool // search box focused inside the menu
	MenuOptions []PickerOption
	MenuCursor  int

	Overlay       Overlay
	OverlayTitle  string
	PickerOptions []PickerOption
	PickerCursor  int
	OverlayBody   string // contact form content
}

// MenuWidth is the width of the side menu, border included
const MenuWidth = 30

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	list   *CardList
}

// NewRenderer creates a renderer drawing list with styles
func NewRenderer(styles *Styles, list *CardList) *Renderer {
	return &Renderer{styles: styles, list: list}
}

// SetStyles swaps the styles after a theme or palette change
func (r *Renderer) SetStyles(styles *Styles) { r.styles = styles }

// Styles returns the active styles
func (r *Renderer) Styles() *Styles { return r.styles }

// ChromeHeight is the number of lines around the card list
func ChromeHeight(state ViewState) int {
	h := 7 // title, subtitle, search box (3), status, blank
	if state.Notice != nil {
		h++
	}
	if state.Help != "" {
		h += lipgloss.Height(state.Help)
	}
	return h
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	s := r.styles
	width := state.Width
	if state.MenuOpen {
		width = max(width-MenuWidth, 20)
	}

	var b strings.Builder
	b.WriteString(r.renderTitle(state, width))
	b.WriteString("\n")
	b.WriteString(r.renderFilters(state))
	b.WriteString("\n")
	b.WriteString(r.renderStatus(state))
	b.WriteString("\n\n")

	listHeight := max(state.Height-ChromeHeight(state), CardHeight)
	var body string
	if state.Loading && state.Total == 0 {
		body = s.Empty.Width(width).Render(state.Spinner + " Loading AI tools...")
	} else {
		body = r.list.Render(s, width, listHeight, state.Selected, state.Offset)
	}
	b.WriteString(lipgloss.NewStyle().Height(listHeight).MaxHeight(listHeight).Render(body))

	if state.Notice != nil {
		b.WriteString("\n")
		if state.Notice.Error {
			b.WriteString(s.NoticeError.Render(state.Notice.Text))
		} else {
			b.WriteString(s.NoticeSuccess.Render(state.Notice.Text))
		}
	}
	if state.Help != "" {
		b.WriteString("\n")
		b.WriteString(state.Help)
	}

	page := b.String()
	if state.MenuOpen {
		page = lipgloss.JoinHorizontal(lipgloss.Top, r.renderMenu(state), page)
	}

	switch state.Overlay {
	case OverlayCategory, OverlayPalette:
		popup := r.renderPicker(state.OverlayTitle, state.PickerOptions, state.PickerCursor)
		return RenderPopupOverlay(page, popup, state.Height, state.Width)
	case OverlayContact:
		popup := s.Popup.Render(s.PopupTitle.Render(state.OverlayTitle) + "\n" + state.OverlayBody)
		return RenderPopupOverlay(page, popup, state.Height, state.Width)
	}
	return page
}

func (r *Renderer) renderTitle(state ViewState, width int) string {
	s := r.styles
	left := s.Title.Render(state.Title)
	right := s.Label.Render(fmt.Sprintf("%s · %s", state.Theme, state.Palette))
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right + "\n" + s.Subtitle.Render(state.Subtitle)
}

func (r *Renderer) renderFilters(state ViewState) string {
	s := r.styles
	box := s.SearchBox
	if state.SearchFocused {
		box = s.SearchActive
	}
	search := box.Width(36).Render(state.HeaderSearch)
	category := s.SearchBox.Render(s.Label.Render("Category: ") + state.CategoryLabel + " ▾")
	return lipgloss.JoinHorizontal(lipgloss.Top, search, " ", category)
}

func (r *Renderer) renderStatus(state ViewState) string {
	s := r.styles
	if state.Loading {
		return s.Status.Render(state.Spinner + " Loading AI tools...")
	}
	return s.Status.Render(fmt.Sprintf("Showing %d of %d tools", state.Visible, state.Total))
}

func (r *Renderer) renderMenu(state ViewState) string {
	s := r.styles
	var b strings.Builder
	b.WriteString(s.PopupTitle.Render("Menu"))
	b.WriteString("\n")

	box := s.SearchBox
	if state.MenuFocused {
		box = s.SearchActive
	}
	b.WriteString(box.Width(MenuWidth - 6).Render(state.MenuSearch))
	b.WriteString("\n\n")
	b.WriteString(s.Label.Render("Categories"))
	b.WriteString("\n")
	b.WriteString(r.renderOptions(state.MenuOptions, state.MenuCursor, !state.MenuFocused))

	return s.Menu.Width(MenuWidth - 1).Height(max(state.Height, 1)).Render(b.String())
}

func (r *Renderer) renderPicker(title string, options []PickerOption, cursor int) string {
	s := r.styles
	return s.Popup.Render(s.PopupTitle.Render(title) + "\n" + r.renderOptions(options, cursor, true))
}

func (r *Renderer) renderOptions(options []PickerOption, cursor int, showCursor bool) string {
	s := r.styles
	rows := make([]string, len(options))
	for i, opt := range options {
		marker := "  "
		style := s.PickerItem
		if showCursor && i == cursor {
			marker = "> "
			style = s.PickerCursor
		}
		label := opt.Label
		if opt.Current {
			label += " ✓"
		}
		row := marker + style.Render(label)
		if len(opt.Swatch) > 0 {
			row += "  " + renderSwatch(opt.Swatch)
		}
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func renderSwatch(colors []string) string {
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("●"))
	}
	return b.String()
}
