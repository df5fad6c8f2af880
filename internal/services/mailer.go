package services

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer abstracts the mail transport so tests can substitute a fake. The
// SendGrid client behind the real implementation is created once at startup
// and reused for the life of the process.
type Mailer interface {
	Send(msg *mail.SGMailV3) error
}

type sendgridMailer struct {
	client *sendgrid.Client
}

// NewSendgridMailer wraps a process-lifetime SendGrid send client.
func NewSendgridMailer(apiKey string) Mailer {
	return &sendgridMailer{client: sendgrid.NewSendClient(apiKey)}
}

func (m *sendgridMailer) Send(msg *mail.SGMailV3) error {
	resp, err := m.client.Send(msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
