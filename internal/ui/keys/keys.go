// Package keys holds the key bindings shared by the input modes and the help bar.
package keys

import "github.com/charmbracelet/bubbles/key"

// Map is the full set of bindings
type Map struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	Search   key.Binding
	Category key.Binding
	Clear    key.Binding
	Menu     key.Binding

	Open  key.Binding
	Copy  key.Binding
	Pager key.Binding

	Theme   key.Binding
	Palette key.Binding
	Contact key.Binding
	Retry   key.Binding

	Confirm   key.Binding
	Back      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// Default returns the standard bindings
func Default() Map {
	return Map{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),

		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		Clear:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
		Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),

		Open:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open link")),
		Copy:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
		Pager: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view in pager")),

		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "light/dark")),
		Palette: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "palette")),
		Contact: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "contact")),
		Retry:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),

		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap
func (m Map) ShortHelp() []key.Binding {
	return []key.Binding{m.Search, m.Category, m.Open, m.Theme, m.Palette, m.Contact, m.Help, m.Quit}
}

// FullHelp implements help.KeyMap
func (m Map) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.Up, m.Down, m.PageUp, m.PageDown, m.Home, m.End},
		{m.Search, m.Category, m.Clear, m.Menu},
		{m.Open, m.Copy, m.Pager, m.Retry},
		{m.Theme, m.Palette, m.Contact, m.Help, m.Quit},
	}
}

// PickerHelp is shown while a list picker is open
func (m Map) PickerHelp() []key.Binding {
	return []key.Binding{m.Up, m.Down, m.Confirm, m.Back}
}

// SearchHelp is shown while a search box has focus
func (m Map) SearchHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply now")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
	}
}
