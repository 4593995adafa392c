package mail

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultOutboxSize is the number of messages an Outbox keeps.
const DefaultOutboxSize = 50

// Outbox is a development Mailer that keeps the most recent messages in
// memory instead of sending them.
type Outbox struct {
	from string
	size int

	mu       sync.RWMutex
	messages []Message // oldest first
}

// NewOutbox returns an Outbox keeping up to size messages. A non-positive size
// means DefaultOutboxSize.
func NewOutbox(from string, size int) *Outbox {
	if size <= 0 {
		size = DefaultOutboxSize
	}
	return &Outbox{from: from, size: size}
}

// Deliver captures msg, assigning an ID and SentAt. The oldest message is
// dropped once the outbox is full.
func (o *Outbox) Deliver(_ context.Context, msg Message) error {
	msg.ID = uuid.NewString()
	msg.SentAt = time.Now().UTC()
	if msg.From == "" {
		msg.From = o.from
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.messages = append(o.messages, msg)
	if over := len(o.messages) - o.size; over > 0 {
		o.messages = append(o.messages[:0:0], o.messages[over:]...)
	}
	return nil
}

// List returns the captured messages, newest first.
func (o *Outbox) List() []Message {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]Message, len(o.messages))
	for i, m := range o.messages {
		out[len(o.messages)-1-i] = m
	}
	return out
}

// Get returns the message with the given ID.
func (o *Outbox) Get(id string) (Message, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	for _, m := range o.messages {
		if m.ID == id {
			return m, true
		}
	}
	return Message{}, false
}
