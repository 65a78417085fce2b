package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch      // header search box
	ModeCategory    // header category picker
	ModePalette     // palette picker
	ModeMenu        // side menu, category list focused
	ModeMenuSearch  // side menu search box
	ModeContact     // contact form overlay
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeCategory:
		return "category"
	case ModePalette:
		return "palette"
	case ModeMenu:
		return "menu"
	case ModeMenuSearch:
		return "menu-search"
	case ModeContact:
		return "contact"
	default:
		return "normal"
	}
}

// IsText reports whether the mode edits a search box
func (m Mode) IsText() bool {
	return m == ModeSearch || m == ModeMenuSearch
}

// InMenu reports whether the side menu is open in this mode
func (m Mode) InMenu() bool {
	return m == ModeMenu || m == ModeMenuSearch
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	Selected() int
	Total() int
	SelectedLink() string // "" when nothing is selected or the entry has no link
	Failed() bool
	CategoryIndex() int // index of the current category among the options
	CategoryCount() int // options including "All Categories"
	PaletteIndex() int
	PaletteCount() int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}

// Cursor is implemented by modes that move a highlight over a list
type Cursor interface {
	Cursor() int
}
