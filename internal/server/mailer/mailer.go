// Package mailer delivers one-time codes to users by email.
package mailer

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/accountkeeper/internal/logging"
	"github.com/resend/resend-go/v3"
	"golang.org/x/time/rate"
)

// Sender is what services depend on; the provider stays behind it.
type Sender interface {
	SendConfirmEmail(ctx context.Context, to, code string) error
	SendRestorePassword(ctx context.Context, to, code string) error
}

// emailAPI is the part of resend.EmailsSvc used here.
type emailAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type ResendMailer struct {
	emails  emailAPI
	from    string
	limiter *rate.Limiter
	log     logging.Logger
}

// NewResendMailer sends through the Resend API as from, at most perSecond
// requests per second. perSecond <= 0 disables throttling.
func NewResendMailer(apiKey, from string, perSecond float64, log logging.Logger) *ResendMailer {
	return newResendMailer(resend.NewClient(apiKey).Emails, from, perSecond, log)
}

func newResendMailer(emails emailAPI, from string, perSecond float64, log logging.Logger) *ResendMailer {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &ResendMailer{
		emails:  emails,
		from:    from,
		limiter: rate.NewLimiter(limit, 1),
		log:     log.With("module", "mailer"),
	}
}

func (m *ResendMailer) SendConfirmEmail(ctx context.Context, to, code string) error {
	return m.send(ctx, to, "Confirm your email", confirmBody(code))
}

func (m *ResendMailer) SendRestorePassword(ctx context.Context, to, code string) error {
	return m.send(ctx, to, "Password restore code", restoreBody(code))
}

func (m *ResendMailer) send(ctx context.Context, to, subject, html string) error {
	if err := m.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("mail throttle: %w", err)
	}

	resp, err := m.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("failed to send %q email: %w", subject, err)
	}

	m.log.Debug(ctx, "email sent", "subject", subject, "id", resp.Id)
	return nil
}

func confirmBody(code string) string {
	return fmt.Sprintf(`<p>Welcome! Use the code below to confirm your email address.</p>
<p style="font-size:20px;font-weight:600;letter-spacing:2px;">%s</p>
<p>If you did not sign up, ignore this message.</p>`, code)
}

func restoreBody(code string) string {
	return fmt.Sprintf(`<p>We received a request to restore your password.</p>
<p style="font-size:20px;font-weight:600;letter-spacing:2px;">%s</p>
<p>The code expires shortly. If this was not you, ignore this message.</p>`, code)
}

// NopMailer logs instead of sending. Used when no API key is configured.
type NopMailer struct {
	log logging.Logger
}

func NewNopMailer(log logging.Logger) *NopMailer {
	return &NopMailer{log: log.With("module", "mailer")}
}

func (m *NopMailer) SendConfirmEmail(ctx context.Context, to, code string) error {
	m.log.Info(ctx, "mail delivery disabled", "kind", "confirm_email", "to", to)
	return nil
}

func (m *NopMailer) SendRestorePassword(ctx context.Context, to, code string) error {
	m.log.Info(ctx, "mail delivery disabled", "kind", "restore_password", "to", to)
	return nil
}
