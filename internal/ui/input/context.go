package input

import (
	"tooldeck/internal/directory"
	"tooldeck/internal/logic"
	"tooldeck/internal/theme"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Store         *directory.Store
	SelectedIndex int
	ShowsFailure  bool
	PaletteKey    string
}

// Selected returns the highlighted card
func (c *ModelContext) Selected() int {
	return c.SelectedIndex
}

// Total returns the number of visible entries
func (c *ModelContext) Total() int {
	return len(c.Store.Visible())
}

// SelectedLink returns the link of the highlighted entry
func (c *ModelContext) SelectedLink() string {
	visible := c.Store.Visible()
	if c.SelectedIndex < 0 || c.SelectedIndex >= len(visible) {
		return ""
	}
	entry := visible[c.SelectedIndex]
	if !entry.HasLink() {
		return ""
	}
	return entry.Target()
}

// Failed reports whether the error panel replaces the list
func (c *ModelContext) Failed() bool {
	return c.ShowsFailure
}

// CategoryIndex returns the position of the selected category among the options
func (c *ModelContext) CategoryIndex() int {
	current := c.Store.Category()
	for i, opt := range logic.CategoryOptions(c.Store.Categories()) {
		if opt.Value == current {
			return i
		}
	}
	return 0
}

// CategoryCount returns the number of category options
func (c *ModelContext) CategoryCount() int {
	return len(c.Store.Categories()) + 1
}

// PaletteIndex returns the position of the active palette
func (c *ModelContext) PaletteIndex() int {
	return theme.Index(c.PaletteKey)
}

// PaletteCount returns the number of palettes
func (c *ModelContext) PaletteCount() int {
	return len(theme.Palettes())
}
