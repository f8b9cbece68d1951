package mailer

import (
	"context"
	"log"
)

// Mailer sends a single email. Implementations are best-effort: callers
// never block their own writes on delivery and treat errors as log-only.
type Mailer interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// LogMailer is the fallback when no email backend is configured. It keeps
// local development noise-free while still showing what would go out.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, to, subject, _, _ string) error {
	log.Printf("email disabled, skipping send to=%s subject=%q", to, subject)
	return nil
}
