package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"time"
)

// MailOptions configure the SMTP relay.
type MailOptions struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// MailSender delivers notifications as plain text email.
type MailSender struct {
	addr string
	from string
	auth smtp.Auth
	// send defaults to smtp.SendMail
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewMailSender creates a MailSender. Authentication is used only when a
// username is configured.
func NewMailSender(options MailOptions) *MailSender {
	var auth smtp.Auth
	if options.Username != "" {
		auth = smtp.PlainAuth("", options.Username, options.Password, options.Host)
	}

	return &MailSender{
		addr: fmt.Sprintf("%s:%d", options.Host, options.Port),
		from: options.From,
		auth: auth,
		send: smtp.SendMail,
	}
}

func (m *MailSender) Send(ctx context.Context, msg Message) error {
	if msg.Email == "" {
		return errors.New("task owner has no email address")
	}
	// a parsed address carries no CR or LF, so it is safe in the To header
	to, err := mail.ParseAddress(msg.Email)
	if err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("could not send mail: %w", err)
	}

	if err := m.send(m.addr, m.auth, m.from, []string{to.Address}, m.compose(to.Address, msg)); err != nil {
		return fmt.Errorf("could not send mail: %w", err)
	}

	return nil
}

func (m *MailSender) compose(to string, msg Message) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject()))
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")

	fmt.Fprintf(&b, "Target: %s\r\n", msg.Target)
	fmt.Fprintf(&b, "Status: %s\r\n", msg.Status)
	if !msg.FinishedAt.IsZero() {
		fmt.Fprintf(&b, "Finished at: %s\r\n", msg.FinishedAt.UTC().Format(time.RFC3339))
	}
	if msg.ResultMessage != "" {
		fmt.Fprintf(&b, "\r\n%s\r\n", msg.ResultMessage)
	}

	return b.Bytes()
}
