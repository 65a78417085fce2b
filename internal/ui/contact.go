package ui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.uber.org/zap"

	"tooldeck/internal/config"
	"tooldeck/internal/contact"
	"tooldeck/internal/domain"
	"tooldeck/internal/eventbus"
	"tooldeck/internal/theme"
	inputtypes "tooldeck/internal/ui/input/types"
)

// contactOverlay is the contact form shown over the page
type contactOverlay struct {
	form    *huh.Form
	sub     *domain.ContactSubmission
	sending bool // submit in flight; the form is replaced by a sending line
	thanked bool // success with the replace style
}

// active reports whether the form is accepting input
func (c *contactOverlay) active() bool {
	return c.form != nil && !c.sending && !c.thanked
}

// newForm builds a fresh form bound to the current submission values
func (c *contactOverlay) newForm(dark bool, width int) tea.Cmd {
	c.form = contact.NewForm(c.sub, dark)
	c.form.SubmitCmd = func() tea.Msg { return contactFormDoneMsg{} }
	c.form.CancelCmd = func() tea.Msg { return contactFormCancelledMsg{} }
	c.resize(width)
	return c.form.Init()
}

func (c *contactOverlay) resize(width int) {
	if c.form != nil && width > 0 {
		c.form = c.form.WithWidth(min(64, max(width-12, 20)))
	}
}

func (m *Model) openContact() tea.Cmd {
	m.contact = &contactOverlay{sub: &domain.ContactSubmission{}}
	m.notice = nil
	m.inputHandler.ChangeMode(inputtypes.ModeContact, m.inputContext())
	return m.contact.newForm(m.mode == theme.Dark, m.width)
}

func (m *Model) closeContact() {
	m.contact = nil
	m.notice = nil
	m.inputHandler.ChangeMode(inputtypes.ModeNormal, m.inputContext())
}

// updateContact routes keys while the overlay is open
func (m *Model) updateContact(msg tea.KeyMsg) tea.Cmd {
	c := m.contact
	switch {
	case m.quitKey(msg):
		return m.quit()
	case c.sending:
		return nil
	case c.thanked:
		m.closeContact()
		return nil
	case msg.String() == "esc":
		m.closeContact()
		return nil
	}
	return m.updateForm(msg)
}

// updateForm feeds msg to the form and starts the submission once it completes
func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	c := m.contact
	model, cmd := c.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		c.form = f
	}

	switch c.form.State {
	case huh.StateCompleted:
		c.sending = true
		m.notice = nil
		return tea.Batch(cmd, m.submit(*c.sub), m.startSpinner())
	case huh.StateAborted:
		m.closeContact()
		return nil
	}
	return cmd
}

func (m *Model) submit(sub domain.ContactSubmission) tea.Cmd {
	submitter, ctx := m.submitter, m.ctx
	return func() tea.Msg {
		return contactSentMsg{err: submitter.Submit(ctx, sub)}
	}
}

func (m *Model) handleContactSent(err error) tea.Cmd {
	c := m.contact
	if c == nil {
		return nil
	}
	c.sending = false
	dark := m.mode == theme.Dark

	if err != nil {
		var se *contact.SubmitError
		if !errors.As(err, &se) {
			se = &contact.SubmitError{Reason: err.Error(), Err: err}
		}
		m.logger.Warn("contact submission failed", zap.Error(err))
		m.publish(eventbus.ContactFailedEvent{Err: err})
		// The rebuilt form keeps what the visitor typed
		return tea.Batch(c.newForm(dark, m.width), m.setNotice(se.UserMessage(), true, errorNoticeTTL))
	}

	m.publish(eventbus.ContactSubmittedEvent{Email: c.sub.Email})
	if m.config.Contact.SuccessStyle == config.SuccessReplace {
		c.thanked = true
		return nil
	}
	*c.sub = domain.ContactSubmission{}
	return tea.Batch(c.newForm(dark, m.width), m.setNotice(contact.SuccessMessage, false, successNoticeTTL))
}

func (m *Model) contactBody() string {
	c := m.contact
	s := m.renderer.Styles()
	var b strings.Builder

	switch {
	case c.thanked:
		b.WriteString(s.NoticeSuccess.Render(contact.ThankYouTitle))
		b.WriteString("\n\n")
		b.WriteString(contact.SuccessMessage)
		b.WriteString("\n\n")
		b.WriteString(s.Help.Render("press any key to close"))
		return b.String()
	case c.sending:
		b.WriteString(m.spinner.View())
		b.WriteString(" Sending...")
	default:
		b.WriteString(c.form.View())
	}

	if m.notice != nil {
		b.WriteString("\n\n")
		if m.notice.Error {
			b.WriteString(s.NoticeError.Render(m.notice.Text))
		} else {
			b.WriteString(s.NoticeSuccess.Render(m.notice.Text))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(s.Help.Render("esc close"))
	return b.String()
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}
