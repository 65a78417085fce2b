// Package render projects the visible entries into display items and hands
// them to a Target.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"

	"tooldeck/internal/domain"
)

// Failure panel texts
const (
	FailureTitle  = "Error Loading Tools"
	FailureAction = "Try Again"
	NoResultsText = "No tools found"
	NoResultsHint = "Try adjusting your search or filter criteria"
)

// Item is one entry as it is displayed, defaults applied
type Item struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Linked      bool   `json:"linked"` // false when Link is the "#" fallback
}

// Failure is the error panel shown instead of the list
type Failure struct {
	Title   string
	Message string
	Action  string
}

// Display is everything a target needs to draw. Exactly one of Failure,
// NoResults or Items is meaningful.
type Display struct {
	Items     []Item
	NoResults bool
	Failure   *Failure
}

// Target is anything that can show a Display. Replace always swaps the
// whole display; nothing of the previous one may survive.
type Target interface {
	Replace(d Display) error
}

// Project turns visible entries into a display. It is pure.
func Project(visible []domain.Entry) Display {
	if len(visible) == 0 {
		return Display{NoResults: true}
	}
	items := make([]Item, len(visible))
	for i, e := range visible {
		items[i] = Item{
			Name:        e.DisplayName(),
			Category:    e.DisplayCategory(),
			Description: e.DisplayDescription(),
			Link:        e.Target(),
			Linked:      e.HasLink(),
		}
	}
	return Display{Items: items}
}

// FailureDisplay is the error panel with a retry action
func FailureDisplay(message string) Display {
	return Display{Failure: &Failure{
		Title:   FailureTitle,
		Message: message,
		Action:  FailureAction,
	}}
}

// Render projects visible and replaces the target's display
func Render(t Target, visible []domain.Entry) error {
	return t.Replace(Project(visible))
}

// RenderFailure replaces the target's display with the error panel
func RenderFailure(t Target, message string) error {
	return t.Replace(FailureDisplay(message))
}

// TerminalSafe strips escape sequences and control characters from feed text
// before it reaches a terminal
func TerminalSafe(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// Sanitized returns a copy of the item with every field made terminal safe
func (i Item) Sanitized() Item {
	return Item{
		Name:        TerminalSafe(i.Name),
		Category:    TerminalSafe(i.Category),
		Description: TerminalSafe(i.Description),
		Link:        TerminalSafe(i.Link),
		Linked:      i.Linked,
	}
}
