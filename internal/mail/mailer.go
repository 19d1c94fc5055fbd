package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Message is one outbound HTML email.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Mailer is the email-delivery collaborator. A single attempt per call;
// retries belong to the invoking layer.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer delivers over plain-auth SMTP.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
}

func NewSMTPMailer(host, port, username, password string) (*SMTPMailer, error) {
	if host == "" {
		return nil, fmt.Errorf("SMTP host not set")
	}
	if port == "" {
		return nil, fmt.Errorf("SMTP port not set")
	}
	if username == "" {
		return nil, fmt.Errorf("SMTP username not set")
	}
	return &SMTPMailer{host: host, port: port, username: username, password: password}, nil
}

func (s *SMTPMailer) Send(_ context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("no recipients")
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	payload := []byte(
		"From: " + msg.From + "\r\n" +
			"To: " + strings.Join(msg.To, ", ") + "\r\n" +
			"Subject: " + msg.Subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"\r\n" +
			msg.HTML + "\r\n")

	if err := smtp.SendMail(s.host+":"+s.port, auth, msg.From, msg.To, payload); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}
