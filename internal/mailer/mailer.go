// Package mailer sends the transactional emails triggered by form
// submissions. Delivery is best effort: callers log failures but never
// surface them to the visitor.
package mailer

import (
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/swissquality-storen/web/internal/repositories"
)

// Mailer delivers the transactional emails for form submissions.
type Mailer interface {
	SendContactNotification(submission repositories.ContactSubmission) error
	SendNewsletterWelcome(email string) error
}

// SMTPMailer implements Mailer over a plain SMTP relay.
type SMTPMailer struct {
	dialer   *gomail.Dialer
	from     string
	notifyTo string
	siteName string
}

// NewSMTPMailer constructs an SMTPMailer.
func NewSMTPMailer(host string, port int, username, password, from, notifyTo, siteName string) *SMTPMailer {
	return &SMTPMailer{
		dialer:   gomail.NewDialer(host, port, username, password),
		from:     from,
		notifyTo: notifyTo,
		siteName: siteName,
	}
}

// SendContactNotification notifies the office about a new contact request.
func (m *SMTPMailer) SendContactNotification(submission repositories.ContactSubmission) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Neue Kontaktanfrage über %s\n\n", m.siteName)
	fmt.Fprintf(&b, "Name: %s\n", submission.Name)
	fmt.Fprintf(&b, "E-Mail: %s\n", submission.Email)
	if submission.Phone != "" {
		fmt.Fprintf(&b, "Telefon: %s\n", submission.Phone)
	}
	if submission.Service != "" {
		fmt.Fprintf(&b, "Dienstleistung: %s\n", submission.Service)
	}
	if submission.Location != "" {
		fmt.Fprintf(&b, "Ort: %s\n", submission.Location)
	}
	fmt.Fprintf(&b, "\nNachricht:\n%s\n", submission.Message)
	fmt.Fprintf(&b, "\nReferenz: %s\nEingegangen: %s\n", submission.ID, submission.CreatedAt.Format("02.01.2006 15:04"))

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.notifyTo)
	msg.SetHeader("Reply-To", submission.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Neue Kontaktanfrage von %s", submission.Name))
	msg.SetBody("text/plain", b.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	return nil
}

// SendNewsletterWelcome greets a new newsletter subscriber.
func (m *SMTPMailer) SendNewsletterWelcome(email string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Guten Tag\n\n")
	fmt.Fprintf(&b, "Vielen Dank für Ihre Anmeldung zum Newsletter von %s.\n", m.siteName)
	fmt.Fprintf(&b, "Sie erhalten ab sofort Neuigkeiten zu Storen, Rollläden und Sonnenschutz direkt in Ihr Postfach.\n\n")
	fmt.Fprintf(&b, "Freundliche Grüsse\nIhr Team von %s\n", m.siteName)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", fmt.Sprintf("Willkommen beim Newsletter von %s", m.siteName))
	msg.SetBody("text/plain", b.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send newsletter welcome: %w", err)
	}
	return nil
}
