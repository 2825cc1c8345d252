package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	mail "gopkg.in/mail.v2"
)

// SMTPMailer sends templated mail over plain SMTP. Each template defines
// three named blocks: subject, plainBody and htmlBody.
type SMTPMailer struct {
	dialer    *mail.Dialer
	fromEmail string
}

func NewSMTP(host string, port int, username, password, fromEmail string) *SMTPMailer {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = 10 * time.Second

	return &SMTPMailer{
		dialer:    dialer,
		fromEmail: fromEmail,
	}
}

func (m *SMTPMailer) Send(templateFile, username, email string, data any) (int, error) {
	tmpl, err := template.New("email").ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		return -1, fmt.Errorf("parsing template %s: %w", templateFile, err)
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		return -1, err
	}

	plainBody := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(plainBody, "plainBody", data); err != nil {
		return -1, err
	}

	htmlBody := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(htmlBody, "htmlBody", data); err != nil {
		return -1, err
	}

	msg := mail.NewMessage()
	msg.SetHeader("To", email)
	msg.SetAddressHeader("From", m.fromEmail, FromName)
	msg.SetHeader("Subject", subject.String())
	msg.SetBody("text/plain", plainBody.String())
	msg.AddAlternative("text/html", htmlBody.String())

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		lastErr = m.dialer.DialAndSend(msg)
		if lastErr == nil {
			return 200, nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return -1, fmt.Errorf("sending %s to %s after %d attempts: %w", templateFile, email, maxRetries, lastErr)
}
