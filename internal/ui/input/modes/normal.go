package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tooldeck/internal/ui/input/types"
	"tooldeck/internal/ui/keys"
)

type NormalMode struct {
	keys keys.Map
}

func NewNormalMode(km keys.Map) *NormalMode {
	return &NormalMode{keys: km}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, k.Back):
		return []types.Action{types.DismissNoticeAction{}}, true

	case key.Matches(msg, k.Up):
		return navigate("up"), true
	case key.Matches(msg, k.Down):
		return navigate("down"), true
	case key.Matches(msg, k.PageUp):
		return navigate("pageup"), true
	case key.Matches(msg, k.PageDown):
		return navigate("pagedown"), true
	case key.Matches(msg, k.Home):
		return navigate("home"), true
	case key.Matches(msg, k.End):
		return navigate("end"), true

	case key.Matches(msg, k.Search):
		return changeMode(types.ModeSearch), true
	case key.Matches(msg, k.Category):
		return changeMode(types.ModeCategory), true
	case key.Matches(msg, k.Palette):
		return changeMode(types.ModePalette), true
	case key.Matches(msg, k.Menu):
		return changeMode(types.ModeMenu), true
	case key.Matches(msg, k.Clear):
		return []types.Action{types.ClearFiltersAction{}}, true

	case key.Matches(msg, k.Open):
		// Nothing to open on the error panel or for entries without a link
		if link := ctx.SelectedLink(); link != "" && !ctx.Failed() {
			return []types.Action{types.OpenLinkAction{Link: link}}, true
		}
		return nil, false
	case key.Matches(msg, k.Copy):
		if link := ctx.SelectedLink(); link != "" && !ctx.Failed() {
			return []types.Action{types.CopyLinkAction{Link: link}}, true
		}
		return nil, false
	case key.Matches(msg, k.Pager):
		return []types.Action{types.ShowPagerAction{}}, true

	case key.Matches(msg, k.Retry):
		return []types.Action{types.RetryAction{}}, true
	case key.Matches(msg, k.Theme):
		return []types.Action{types.ToggleThemeAction{}}, true
	case key.Matches(msg, k.Contact):
		return []types.Action{types.OpenContactAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}

func changeMode(mode types.Mode) []types.Action {
	return []types.Action{types.ChangeModeAction{Mode: mode}}
}
