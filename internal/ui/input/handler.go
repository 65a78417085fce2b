package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tooldeck/internal/ui/input/modes"
	"tooldeck/internal/ui/input/types"
	"tooldeck/internal/ui/keys"
)

// Placeholder shown in both search boxes
const SearchPlaceholder = "Search AI tools..."

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	menu        *modes.MenuMode
	header      *textinput.Model // header search box
	menuSearch  *textinput.Model // side menu search box
}

func New(km keys.Map) *Handler {
	header := newSearchInput()
	menuSearch := newSearchInput()

	h := &Handler{
		currentMode: types.ModeNormal,
		header:      &header,
		menuSearch:  &menuSearch,
		modes:       make(map[types.Mode]types.ModeHandler),
		menu:        modes.NewMenuMode(km),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode(km)
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.header)
	h.modes[types.ModeMenuSearch] = modes.NewMenuSearchMode(h.menuSearch)
	h.modes[types.ModeCategory] = modes.NewCategoryPicker(km)
	h.modes[types.ModePalette] = modes.NewPalettePicker(km)
	h.modes[types.ModeMenu] = h.menu

	return h
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = SearchPlaceholder
	ti.Prompt = ""
	ti.CharLimit = 200
	return ti
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed && !h.currentMode.IsText() {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
			if changeMode.Mode.IsText() {
				cmd = textinput.Blink
			}
			continue
		}
		allActions = append(allActions, action)
	}

	// Unconsumed keys in a text mode edit the box
	if h.currentMode.IsText() && !consumed {
		ti := h.input(h.currentMode)
		before := ti.Value()
		var textCmd tea.Cmd
		*ti, textCmd = ti.Update(msg)
		cmd = textCmd
		if ti.Value() != before {
			allActions = append(allActions, types.UpdateTextAction{Text: ti.Value(), Mode: h.currentMode})
		}
	}

	return allActions, cmd
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}

	// Opening the menu from outside starts on the current category
	if mode == types.ModeMenu && !h.currentMode.InMenu() {
		h.menu.Reset(ctx)
	}

	h.currentMode = mode
	if next := h.modes[mode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// ChangeMode switches mode outside of key handling, running Exit and Enter
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) []types.Action {
	return h.switchMode(mode, ctx)
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

func (h *Handler) input(mode types.Mode) *textinput.Model {
	if mode == types.ModeMenuSearch {
		return h.menuSearch
	}
	return h.header
}

// HeaderInput returns the header search box
func (h *Handler) HeaderInput() *textinput.Model { return h.header }

// MenuInput returns the side menu search box
func (h *Handler) MenuInput() *textinput.Model { return h.menuSearch }

// SetSearchText mirrors the shared search term into both boxes
func (h *Handler) SetSearchText(text string) {
	for _, ti := range []*textinput.Model{h.header, h.menuSearch} {
		if ti.Value() != text {
			ti.SetValue(text)
		}
	}
}

// Cursor returns the list cursor of a picker mode, or -1
func (h *Handler) Cursor(mode types.Mode) int {
	if mode == types.ModeMenuSearch {
		mode = types.ModeMenu
	}
	if c, ok := h.modes[mode].(types.Cursor); ok {
		return c.Cursor()
	}
	return -1
}

// Update handles non-keyboard messages for the focused text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode.IsText() {
		ti := h.input(h.currentMode)
		var cmd tea.Cmd
		*ti, cmd = ti.Update(msg)
		return cmd
	}
	return nil
}

