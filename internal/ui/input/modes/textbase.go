package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tooldeck/internal/ui/input/types"
)

// TextInputMode is a base for modes that edit a search box. The box keeps its
// text across visits; it mirrors the shared search term.
type TextInputMode struct {
	mode      types.Mode
	name      string
	back      types.Mode // mode entered on esc
	done      types.Mode // mode entered on enter
	textInput *textinput.Model
}

func NewTextInputMode(mode types.Mode, name string, back, done types.Mode, ti *textinput.Model) TextInputMode {
	return TextInputMode{
		mode:      mode,
		name:      name,
		back:      back,
		done:      done,
		textInput: ti,
	}
}

func (m TextInputMode) Name() string {
	return m.name
}

func (m TextInputMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.CursorEnd()
		m.textInput.Focus()
	}
	return nil
}

func (m TextInputMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m TextInputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{types.ChangeModeAction{Mode: m.back}}, true
	case "enter":
		text := ""
		if m.textInput != nil {
			text = m.textInput.Value()
		}
		return []types.Action{
			types.SubmitTextAction{Text: text, Mode: m.mode},
			types.ChangeModeAction{Mode: m.done},
		}, true
	default:
		// The handler feeds the key to the text input
		return nil, false
	}
}
