package notify

import (
	"log/slog"

	"github.com/keighl/postmark"
)

// Mailer sends a single HTML email. Implementations are best-effort: callers
// never block a request on the result.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// PostmarkMailer sends through the Postmark API.
type PostmarkMailer struct {
	client *postmark.Client
	from   string
}

func NewPostmarkMailer(serverToken, from string) *PostmarkMailer {
	return &PostmarkMailer{
		client: postmark.NewClient(serverToken, ""),
		from:   from,
	}
}

func (m *PostmarkMailer) Send(to, subject, htmlBody string) error {
	_, err := m.client.SendEmail(postmark.Email{
		From:     m.from,
		To:       to,
		Subject:  subject,
		HtmlBody: htmlBody,
		TextBody: htmlBody,
	})
	return err
}

// LogMailer is the fallback when no Postmark token is configured.
type LogMailer struct{}

func (LogMailer) Send(to, subject, _ string) error {
	slog.Info("email (not sent, no mail provider configured)", "to", to, "subject", subject)
	return nil
}
