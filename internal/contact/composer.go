// Package contact turns the quote request form into a pre-filled mail draft.
// Nothing is sent or stored here; the visitor's own mail client delivers it.
package contact

import (
	"strings"

	"github.com/curtsdirt/site/internal/model"
)

const (
	subjectBase = "Soil delivery request"
	greeting    = "Hi Curt,"
	intro       = "I'm reaching out through the Curt's Dirt website with a new project."
	closing     = "Talk soon!"
)

type Composer struct {
	recipient string
}

func NewComposer(recipient string) *Composer {
	return &Composer{recipient: strings.TrimSpace(recipient)}
}

func (c *Composer) Recipient() string {
	return c.recipient
}

// Compose builds the draft for a single submission. Every field is optional
// and empty fields are left out of the body entirely.
func (c *Composer) Compose(req model.ContactRequest) model.MailDraft {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	details := strings.TrimSpace(req.Details)

	subject := Subject(name)
	body := Body(name, email, details)

	return model.MailDraft{
		Recipient: c.recipient,
		Subject:   subject,
		Body:      body,
		URI:       MailtoURI(c.recipient, subject, body),
	}
}

func Subject(name string) string {
	if name == "" {
		return subjectBase
	}
	return subjectBase + " from " + name
}

func Body(name, email, details string) string {
	lines := []string{greeting, "", intro}
	if name != "" {
		lines = append(lines, "Name: "+name)
	}
	if email != "" {
		lines = append(lines, "Email: "+email)
	}
	if details != "" {
		lines = append(lines, "Project details:", details)
	}
	lines = append(lines, "", closing)
	return strings.Join(lines, "\n")
}

// MailtoURI addresses the draft to recipient with subject and body as query
// parameters.
func MailtoURI(recipient, subject, body string) string {
	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(recipient)
	b.WriteString("?subject=")
	b.WriteString(EncodeComponent(subject))
	b.WriteString("&body=")
	b.WriteString(EncodeComponent(body))
	return b.String()
}
