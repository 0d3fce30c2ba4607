package mailer

import (
	"fmt"
	"net/smtp"
	"regexp"
	"strings"
)

// Mailer sends the transactional mail the site needs. Delivery failures
// after a successful primary write are logged and swallowed by callers; the
// write is never rolled back.
type Mailer interface {
	SendInvitation(email, token string) error
	SendContactNotification(to []string, name, email, subject, message string) error
	SendReply(to, subject, message string) error
	SendTest(to string) error
}

// Config holds SMTP connection details.
type Config struct {
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	FrontendURL string
}

// SMTPMailer implements Mailer over plain SMTP.
type SMTPMailer struct {
	cfg Config
}

// NewSMTPMailer creates a new SMTPMailer.
func NewSMTPMailer(cfg Config) *SMTPMailer {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) send(to []string, subject, htmlBody string) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients")
	}
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n%s%s",
		m.cfg.From, strings.Join(to, ", "), subject, mime, htmlBody))

	return smtp.SendMail(addr, auth, m.cfg.From, to, msg)
}

// SendInvitation mails the registration link for a freshly issued token.
func (m *SMTPMailer) SendInvitation(email, token string) error {
	body, err := renderInvitation(m.cfg.FrontendURL, token)
	if err != nil {
		return err
	}
	return m.send([]string{email}, "You've been invited to join the Amonarq Admin Panel", body)
}

// SendContactNotification forwards a contact-form submission to the staff
// recipient list.
func (m *SMTPMailer) SendContactNotification(to []string, name, email, subject, message string) error {
	body, err := renderContact(name, email, subject, message)
	if err != nil {
		return err
	}
	return m.send(to, "Contact Form: "+subject, body)
}

// SendReply mails a staff reply to a contact-form sender.
func (m *SMTPMailer) SendReply(to, subject, message string) error {
	body, err := renderReply(message)
	if err != nil {
		return err
	}
	return m.send([]string{to}, subject, body)
}

// SendTest sends a configuration check mail.
func (m *SMTPMailer) SendTest(to string) error {
	body, err := renderTest()
	if err != nil {
		return err
	}
	return m.send([]string{to}, "Test Email from Amonarq", body)
}

var recipientSeparators = regexp.MustCompile(`[\n,;]+`)

// ParseRecipientList splits a configured recipient string on newlines,
// commas and semicolons, dropping empty entries.
func ParseRecipientList(value string) []string {
	if value == "" {
		return nil
	}
	parts := recipientSeparators.Split(value, -1)
	emails := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			emails = append(emails, trimmed)
		}
	}
	return emails
}
