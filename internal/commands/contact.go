package commands

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tooldeck/internal/contact"
	"tooldeck/internal/domain"
	"tooldeck/internal/theme"
)

// ContactOptions prefill the form. With all three set no form is shown.
type ContactOptions struct {
	Name    string
	Email   string
	Message string
}

func AddContactArgs(cmd *cobra.Command, o *ContactOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "", "Your name.")
	cmd.Flags().StringVar(&o.Email, "email", "", "Your email address.")
	cmd.Flags().StringVarP(&o.Message, "message", "m", "", "The message to send.")
}

func (o *ContactOptions) complete() bool {
	return o.Name != "" && o.Email != "" && o.Message != ""
}

func addContact(topLevel *cobra.Command, ro *RootOptions) {
	co := &ContactOptions{}

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message to the directory maintainers",
		Example: `
tooldeck contact
tooldeck contact --name Ada --email ada@example.com -m "Please add my tool"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := ro.environment()
			if err != nil {
				return err
			}
			defer e.Close()

			sub := domain.ContactSubmission{Name: co.Name, Email: co.Email, Message: co.Message}
			if co.complete() {
				if err := validate(sub); err != nil {
					return err
				}
			} else {
				dark := e.loadPrefs().Theme == theme.Dark
				if err := contact.NewStandaloneForm(&sub, dark).RunWithContext(cmd.Context()); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return fmt.Errorf("contact form: %w", err)
				}
			}

			client := contact.NewClient(e.cfg.Contact.Action, e.cfg.Contact.Timeout.Duration, contact.WithLogger(e.logger))
			if err := client.Submit(cmd.Context(), sub); err != nil {
				var se *contact.SubmitError
				if errors.As(err, &se) {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), color.RedString(se.UserMessage()))
				}
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), color.GreenString(contact.SuccessMessage))
			return nil
		},
	}
	AddContactArgs(cmd, co)

	topLevel.AddCommand(cmd)
}

// validate applies the form's field rules to a flag-built submission
func validate(sub domain.ContactSubmission) error {
	return errors.Join(
		contact.ValidateRequired("name")(sub.Name),
		contact.ValidateEmail(sub.Email),
		contact.ValidateRequired("message")(sub.Message),
	)
}
