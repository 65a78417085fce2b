package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"tooldeck/internal/ui/input/types"
)

// SearchMode edits the header search box
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", types.ModeNormal, types.ModeNormal, ti),
	}
}

// MenuSearchMode edits the side menu search box. Enter applies the term and
// closes the menu; esc returns to the menu's category list.
type MenuSearchMode struct {
	TextInputMode
}

func NewMenuSearchMode(ti *textinput.Model) *MenuSearchMode {
	return &MenuSearchMode{
		TextInputMode: NewTextInputMode(types.ModeMenuSearch, "menu search", types.ModeMenu, types.ModeNormal, ti),
	}
}
