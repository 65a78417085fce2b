package contact

import (
	"errors"
	"net/mail"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"tooldeck/internal/domain"
)

// ValidateRequired rejects blank input
func ValidateRequired(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(label + " is required")
		}
		return nil
	}
}

// ValidateEmail rejects input that is not a single address
func ValidateEmail(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("email is required")
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != strings.TrimSpace(s) {
		return errors.New("enter a valid email address")
	}
	return nil
}

// NewForm builds the contact form bound to sub
func NewForm(sub *domain.ContactSubmission, dark bool) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Placeholder("Your name").
				Value(&sub.Name).
				Validate(ValidateRequired("name")),
			huh.NewInput().
				Key("email").
				Title("Email").
				Placeholder("you@example.com").
				Value(&sub.Email).
				Validate(ValidateEmail),
			huh.NewText().
				Key("message").
				Title("Message").
				Placeholder("Suggest a tool, report a broken link, say hello...").
				Lines(5).
				Value(&sub.Message).
				Validate(ValidateRequired("message")),
		),
	).WithShowHelp(true)

	if dark {
		return form.WithTheme(huh.ThemeDracula())
	}
	return form.WithTheme(huh.ThemeCharm())
}

// NewStandaloneForm builds the form for use outside the TUI, falling back to
// accessible prompts when stdin is not a terminal
func NewStandaloneForm(sub *domain.ContactSubmission, dark bool) *huh.Form {
	form := NewForm(sub, dark)
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		form = form.WithAccessible(true)
	}
	return form
}
