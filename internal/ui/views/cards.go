package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tooldeck/internal/render"
)

// CardHeight is the number of lines one card takes, separator included
const CardHeight = 5

// CardList is the terminal render target. It keeps the last display with
// every field stripped of control sequences.
type CardList struct {
	display render.Display
}

// NewCardList creates an empty list showing no results
func NewCardList() *CardList {
	return &CardList{display: render.Display{NoResults: true}}
}

// Replace swaps in d
func (l *CardList) Replace(d render.Display) error {
	next := render.Display{NoResults: d.NoResults}
	if d.Failure != nil {
		f := *d.Failure
		f.Message = render.TerminalSafe(f.Message)
		next.Failure = &f
	}
	if len(d.Items) > 0 {
		next.Items = make([]render.Item, len(d.Items))
		for i, item := range d.Items {
			next.Items[i] = item.Sanitized()
		}
	}
	l.display = next
	return nil
}

// Display returns the current display
func (l *CardList) Display() render.Display { return l.display }

// Len returns the number of cards
func (l *CardList) Len() int { return len(l.display.Items) }

// PageSize returns how many cards fit in height lines
func PageSize(height int) int {
	return max(height/CardHeight, 1)
}

// Render draws the cards from offset that fit into height lines
func (l *CardList) Render(s *Styles, width, height, selected, offset int) string {
	switch {
	case l.display.Failure != nil:
		return renderFailure(s, l.display.Failure, width)
	case l.display.NoResults || len(l.display.Items) == 0:
		return s.Empty.Width(width).Render(
			s.Name.Render(render.NoResultsText) + "\n" + render.NoResultsHint)
	}

	end := min(offset+PageSize(height), len(l.display.Items))
	cards := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		cards = append(cards, renderCard(s, l.display.Items[i], width, i == selected))
	}
	return strings.Join(cards, "\n")
}

func renderCard(s *Styles, item render.Item, width int, selected bool) string {
	inner := max(width-3, 10)

	lines := strings.Split(wordwrap.String(item.Description, inner), "\n")
	if len(lines) > 2 {
		lines = lines[:2]
		lines[1] += " …"
	}
	for len(lines) < 2 {
		lines = append(lines, "")
	}

	link := s.NoLink.Render("no link")
	if item.Linked {
		link = s.Link.Render(truncate.StringWithTail(item.Link, uint(inner), "…"))
	}

	body := strings.Join([]string{
		s.Category.Render(truncate.String(item.Category, uint(inner))) + "  " +
			s.Name.Render(truncate.StringWithTail(item.Name, uint(max(inner-lipgloss.Width(item.Category)-2, 1)), "…")),
		s.Description.Render(truncate.StringWithTail(lines[0], uint(inner), "…")),
		s.Description.Render(truncate.StringWithTail(lines[1], uint(inner), "…")),
		link,
	}, "\n")

	style := s.Card
	if selected {
		style = s.CardSelected
	}
	return style.Width(width-1).Render(body) + "\n"
}

func renderFailure(s *Styles, f *render.Failure, width int) string {
	box := s.ErrorBox.Render(
		s.ErrorTitle.Render(f.Title) + "\n\n" +
			f.Message + "\n\n" +
			s.Accent.Render("[r] "+f.Action))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}
