package content

import (
	"context"
	"testing"

	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/storage"
	"github.com/Zachkp/portfolio/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessages(t *testing.T) (*Messages, *testutil.StubClock) {
	t.Helper()
	clock := testutil.FixedClock()
	store := NewStore(storage.NewMemoryStorage(), logging.Discard())
	return NewMessages(store, testutil.NewStubIDGenerator(), clock), clock
}

func TestMessages_Receive(t *testing.T) {
	m, clock := newMessages(t)
	ctx := context.Background()

	msg, list := m.Receive(ctx, Submission{
		Name:    "  Ada ",
		Email:   " Ada@Example.COM ",
		Subject: "Hello",
		Message: "Are you available?",
	})

	assert.Equal(t, Message{
		ID:        "id-1",
		Name:      "Ada",
		Email:     "ada@example.com",
		Subject:   "Hello",
		Message:   "Are you available?",
		Timestamp: clock.Now(),
		Read:      false,
	}, msg)
	assert.Equal(t, []Message{msg}, list)
	assert.Equal(t, 1, m.UnreadCount(ctx))
}

func TestMessages_SetReadOnlyTouchesReadFlag(t *testing.T) {
	m, _ := newMessages(t)
	ctx := context.Background()

	first, _ := m.Receive(ctx, Submission{Name: "A", Email: "a@example.com", Message: "one"})
	second, _ := m.Receive(ctx, Submission{Name: "B", Email: "b@example.com", Message: "two"})

	list := m.SetRead(ctx, first.ID, true)
	require.Len(t, list, 2)

	want := first
	want.Read = true
	got, ok := m.Get(ctx, first.ID)
	require.True(t, ok)
	assert.True(t, got.Timestamp.Equal(want.Timestamp))
	got.Timestamp = want.Timestamp
	assert.Equal(t, want, got)
	assert.Equal(t, 1, m.UnreadCount(ctx))

	m.SetRead(ctx, first.ID, false)
	assert.Equal(t, 2, m.UnreadCount(ctx))

	m.Delete(ctx, second.ID)
	assert.Len(t, m.List(ctx), 1)
}

func TestMessages_FieldValuesStatus(t *testing.T) {
	assert.Equal(t, []string{"unread"}, Message{}.FieldValues("status"))
	assert.Equal(t, []string{"read"}, Message{Read: true}.FieldValues("status"))
}
