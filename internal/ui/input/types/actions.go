package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode // which search box changed
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode
}

func (a SubmitTextAction) Type() string { return "submit_text" }

// Picker actions
type SelectCategoryAction struct {
	Index int // index into the category options
}

func (a SelectCategoryAction) Type() string { return "select_category" }

type SelectPaletteAction struct {
	Index int
}

func (a SelectPaletteAction) Type() string { return "select_palette" }

type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

// Entry actions
type OpenLinkAction struct {
	Link string
}

func (a OpenLinkAction) Type() string { return "open_link" }

type CopyLinkAction struct {
	Link string
}

func (a CopyLinkAction) Type() string { return "copy_link" }

type ShowPagerAction struct{}

func (a ShowPagerAction) Type() string { return "show_pager" }

// Page actions
type RetryAction struct{}

func (a RetryAction) Type() string { return "retry" }

type ToggleThemeAction struct{}

func (a ToggleThemeAction) Type() string { return "toggle_theme" }

type OpenContactAction struct{}

func (a OpenContactAction) Type() string { return "open_contact" }

type DismissNoticeAction struct{}

func (a DismissNoticeAction) Type() string { return "dismiss_notice" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
