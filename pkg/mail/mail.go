// Package mail delivers the application's outgoing messages. Messages are
// written in Markdown. Production logs each delivery; development captures
// messages in an Outbox that the letter-opener preview serves.
package mail

import (
	"context"
	"time"

	"github.com/ghuser/blogs/pkg/logger"
)

// Message is one outgoing mail.
type Message struct {
	ID       string
	From     string
	To       string
	Subject  string
	Markdown string
	SentAt   time.Time
}

// Mailer delivers messages. Implementations must be safe for concurrent use.
type Mailer interface {
	Deliver(ctx context.Context, msg Message) error
}

// LogMailer records each delivery as a structured log line. The body is not
// logged.
type LogMailer struct {
	from string
	log  logger.Logger
}

// NewLogMailer returns a LogMailer sending as from.
func NewLogMailer(from string, log logger.Logger) *LogMailer {
	return &LogMailer{from: from, log: log}
}

// Deliver logs msg.
func (m *LogMailer) Deliver(ctx context.Context, msg Message) error {
	if msg.From == "" {
		msg.From = m.from
	}
	m.log.InfoContext(ctx, "mail delivered",
		"from", msg.From,
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}
