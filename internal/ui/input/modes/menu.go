package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tooldeck/internal/ui/input/types"
	"tooldeck/internal/ui/keys"
)

// MenuMode is the side menu: its own search box and category list. Choosing
// a category closes the menu.
type MenuMode struct {
	*PickerMode
}

func NewMenuMode(km keys.Map) *MenuMode {
	p := NewCategoryPicker(km)
	p.name = "menu"
	return &MenuMode{PickerMode: p}
}

// Enter keeps the cursor when coming back from the menu search box
func (m *MenuMode) Enter(ctx types.Context) []types.Action {
	return nil
}

// Reset puts the cursor on the current category; called when the menu opens
func (m *MenuMode) Reset(ctx types.Context) {
	m.cursor = m.current(ctx)
}

func (m *MenuMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Menu):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case key.Matches(msg, m.keys.Search), msg.String() == "tab":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeMenuSearch}}, true
	}
	return m.PickerMode.HandleKey(msg, ctx)
}
