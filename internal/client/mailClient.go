package client

import (
	"fmt"
	"guestpost-marketplace/internal/config"

	"github.com/wneessen/go-mail"
)

// --- INTERFACE ---

type MailClient interface {
	// SendPublisherInvitation delivers the invite email with the accept link
	SendPublisherInvitation(to, name, acceptURL string) error
}

// --- IMPLEMENTATION ---

type mailClientImpl struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewMailClient(cfg *config.SMTP) MailClient {
	return &mailClientImpl{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
	}
}

func (c *mailClientImpl) SendPublisherInvitation(to, name, acceptURL string) error {
	msg := mail.NewMsg()

	if err := msg.From(c.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("Invitation to join our publisher network")
	msg.SetBodyString(mail.TypeTextHTML, invitationHTML(name, acceptURL))

	smtpClient, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(c.username),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	return smtpClient.DialAndSend(msg)
}

func invitationHTML(name, acceptURL string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body>
	<h2>Hello %s,</h2>
	<p>You have been invited to list your websites on our guest-post marketplace.</p>
	<p><a href="%s">Accept your invitation</a></p>
	<p>This link expires in 14 days.</p>
</body>
</html>`, name, acceptURL)
}
