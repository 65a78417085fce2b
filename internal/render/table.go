package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// TableTarget prints the display as a plain-text table. Every Replace writes
// a complete listing.
type TableTarget struct {
	out         io.Writer
	maxColWidth uint
}

// NewTableTarget writes tables to out
func NewTableTarget(out io.Writer, maxColWidth uint) *TableTarget {
	if maxColWidth == 0 {
		maxColWidth = 60
	}
	return &TableTarget{out: out, maxColWidth: maxColWidth}
}

// Replace prints d
func (t *TableTarget) Replace(d Display) error {
	_, err := io.WriteString(t.out, Table(d, t.maxColWidth))
	return err
}

// Table formats d as text. Colour follows fatih/color's global NoColor.
func Table(d Display, maxColWidth uint) string {
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	if d.Failure != nil {
		red := color.New(color.FgRed, color.Bold).SprintFunc()
		return fmt.Sprintf("%s\n%s\n", red(d.Failure.Title), TerminalSafe(d.Failure.Message))
	}
	if d.NoResults {
		return fmt.Sprintf("%s\n%s\n", bold(NoResultsText), faint(NoResultsHint))
	}

	table := uitable.New()
	table.MaxColWidth = maxColWidth
	table.Wrap = true
	table.AddRow(bold("NAME"), bold("CATEGORY"), bold("DESCRIPTION"), bold("LINK"))
	for _, raw := range d.Items {
		item := raw.Sanitized()
		link := item.Link
		if !item.Linked {
			link = faint("-")
		}
		table.AddRow(item.Name, item.Category, item.Description, link)
	}

	var sb strings.Builder
	sb.WriteString(table.String())
	sb.WriteString("\n")
	return sb.String()
}
