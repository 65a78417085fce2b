package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tooldeck/internal/ui/input/types"
	"tooldeck/internal/ui/keys"
)

// PickerMode moves a cursor over a list and chooses one item
type PickerMode struct {
	name    string
	keys    keys.Map
	count   func(types.Context) int
	current func(types.Context) int
	choose  func(int) []types.Action
	cursor  int
}

// NewCategoryPicker chooses among the category options
func NewCategoryPicker(km keys.Map) *PickerMode {
	return &PickerMode{
		name:    "category",
		keys:    km,
		count:   func(c types.Context) int { return c.CategoryCount() },
		current: func(c types.Context) int { return c.CategoryIndex() },
		choose: func(i int) []types.Action {
			return []types.Action{
				types.SelectCategoryAction{Index: i},
				types.ChangeModeAction{Mode: types.ModeNormal},
			}
		},
	}
}

// NewPalettePicker chooses among the colour palettes
func NewPalettePicker(km keys.Map) *PickerMode {
	return &PickerMode{
		name:    "palette",
		keys:    km,
		count:   func(c types.Context) int { return c.PaletteCount() },
		current: func(c types.Context) int { return c.PaletteIndex() },
		choose: func(i int) []types.Action {
			return []types.Action{
				types.SelectPaletteAction{Index: i},
				types.ChangeModeAction{Mode: types.ModeNormal},
			}
		},
	}
}

func (m *PickerMode) Name() string { return m.name }

func (m *PickerMode) Cursor() int { return m.cursor }

func (m *PickerMode) Enter(ctx types.Context) []types.Action {
	m.cursor = m.current(ctx)
	return nil
}

func (m *PickerMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *PickerMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	n := m.count(ctx)
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return nil, true
	case key.Matches(msg, m.keys.Down):
		if m.cursor < n-1 {
			m.cursor++
		}
		return nil, true
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
		return nil, true
	case key.Matches(msg, m.keys.End):
		m.cursor = max(n-1, 0)
		return nil, true
	case key.Matches(msg, m.keys.Confirm):
		if n == 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
		}
		return m.choose(min(m.cursor, n-1)), true
	}
	return nil, true
}
