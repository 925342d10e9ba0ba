package content

import (
	"context"

	"github.com/Zachkp/portfolio/internal/common"
)

// Messages is the inbox. Messages arrive through Receive and afterwards only
// their read flag changes, or they are deleted.
type Messages struct {
	*Collection[Message]
	clock common.Clock
}

func NewMessages(store *Store, ids IDGenerator, clock common.Clock) *Messages {
	return &Messages{
		Collection: NewCollection[Message](MessagesKey, store, ids, nil),
		clock:      clock,
	}
}

// Receive stores a contact form submission as an unread message.
func (m *Messages) Receive(ctx context.Context, s Submission) (Message, []Message) {
	s = s.Normalize()
	msg := Message{
		ID:        m.ids.New(),
		Name:      s.Name,
		Email:     s.Email,
		Subject:   s.Subject,
		Message:   s.Message,
		Timestamp: m.clock.Now().UTC(),
	}
	return msg, m.Create(ctx, msg)
}

// SetRead flips the read flag of one message.
func (m *Messages) SetRead(ctx context.Context, id string, read bool) []Message {
	return m.Modify(ctx, id, func(msg Message) Message {
		msg.Read = read
		return msg
	})
}

func (m *Messages) UnreadCount(ctx context.Context) int {
	n := 0
	for _, msg := range m.List(ctx) {
		if !msg.Read {
			n++
		}
	}
	return n
}
