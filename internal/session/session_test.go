package session

import (
	"context"
	"testing"
	"time"

	"github.com/Zachkp/portfolio/internal/common"
	"github.com/Zachkp/portfolio/internal/storage"
	"github.com/Zachkp/portfolio/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func newGate(t *testing.T, opts Options) (*Gate, *storage.MemoryStorage, *testutil.StubClock) {
	t.Helper()
	clock := testutil.FixedClock()
	if opts.Clock == nil {
		opts.Clock = clock
	}
	if opts.SigningKey == nil {
		opts.SigningKey = testKey
	}
	mem := storage.NewMemoryStorage()
	g, err := NewGate(opts, mem)
	require.NoError(t, err)
	return g, mem, clock
}

func TestNewGate_RequiresKey(t *testing.T) {
	_, err := NewGate(Options{Password: "x"}, storage.NewMemoryStorage())
	assert.Error(t, err)
}

func TestGate_Check(t *testing.T) {
	g, _, clock := newGate(t, Options{Password: "pw"})
	now := clock.Now()

	tests := []struct {
		name string
		s    *Session
		want bool
	}{
		{"nil", nil, false},
		{"valid admin", &Session{Role: RoleAdmin, IssuedAt: now, ExpiresAt: now.Add(time.Hour)}, true},
		{"expired", &Session{Role: RoleAdmin, IssuedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour)}, false},
		{"expires now", &Session{Role: RoleAdmin, IssuedAt: now.Add(-time.Hour), ExpiresAt: now}, false},
		{"guest role", &Session{Role: "guest", IssuedAt: now, ExpiresAt: now.Add(time.Hour)}, false},
		{"empty role", &Session{IssuedAt: now, ExpiresAt: now.Add(time.Hour)}, false},
		{"expiry not after issue", &Session{Role: RoleAdmin, IssuedAt: now.Add(2 * time.Hour), ExpiresAt: now.Add(time.Hour)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Check(tt.s))
		})
	}
}

func TestGate_LoginExpiresAfterTTL(t *testing.T) {
	g, _, clock := newGate(t, Options{Password: "admin123"})
	ctx := context.Background()

	s, err := g.Login(ctx, "admin123")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, s.Role)
	assert.Equal(t, clock.Now().Add(24*time.Hour), s.ExpiresAt)

	assert.True(t, g.Check(s))
	assert.True(t, g.Authenticated(ctx))
	assert.Equal(t, s, g.Current(ctx))

	clock.Advance(24*time.Hour - time.Second)
	assert.True(t, g.Authenticated(ctx))

	clock.Advance(time.Second)
	assert.False(t, g.Check(s))
	assert.False(t, g.Authenticated(ctx))

	_, err = g.Require(ctx)
	assert.ErrorIs(t, err, common.ErrSessionExpiredOrMissing)
}

func TestGate_LoginWrongPassword(t *testing.T) {
	g, mem, _ := newGate(t, Options{Password: "admin123"})
	ctx := context.Background()

	for _, pw := range []string{"", "admin", "Admin123", "admin123 "} {
		s, err := g.Login(ctx, pw)
		assert.ErrorIs(t, err, common.ErrInvalidCredentials, pw)
		assert.Nil(t, s)
	}

	_, err := mem.Get(ctx, Key)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.False(t, g.Authenticated(ctx))
}

func TestGate_NoSecretConfigured(t *testing.T) {
	g, _, _ := newGate(t, Options{})

	_, err := g.Login(context.Background(), "")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestGate_CustomTTL(t *testing.T) {
	g, _, clock := newGate(t, Options{Password: "pw", TTL: time.Hour})

	s, err := g.Login(context.Background(), "pw")
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(time.Hour), s.ExpiresAt)
	assert.Equal(t, time.Hour, g.TTL())
}

func TestGate_Logout(t *testing.T) {
	g, _, _ := newGate(t, Options{Password: "pw"})
	ctx := context.Background()

	_, err := g.Login(ctx, "pw")
	require.NoError(t, err)
	require.True(t, g.Authenticated(ctx))

	require.NoError(t, g.Logout(ctx))
	assert.Nil(t, g.Current(ctx))
	assert.False(t, g.Authenticated(ctx))

	// logging out twice is fine
	assert.NoError(t, g.Logout(ctx))
}

func TestGate_CorruptToken(t *testing.T) {
	g, mem, _ := newGate(t, Options{Password: "pw"})
	ctx := context.Background()

	for _, v := range []string{"garbage", "a.b.c", `{"role":"admin"}`} {
		require.NoError(t, mem.Set(ctx, Key, v))
		assert.Nil(t, g.Current(ctx), v)
		assert.False(t, g.Authenticated(ctx), v)
	}
}

func TestGate_ForgedToken(t *testing.T) {
	g, mem, clock := newGate(t, Options{Password: "pw"})
	ctx := context.Background()

	now := clock.Now()
	forged, err := encode(&Session{Role: RoleAdmin, IssuedAt: now, ExpiresAt: now.Add(time.Hour)},
		[]byte("some-other-signing-key-entirely!"))
	require.NoError(t, err)
	require.NoError(t, mem.Set(ctx, Key, forged))

	assert.Nil(t, g.Current(ctx))
	assert.False(t, g.Authenticated(ctx))
}

func TestGate_SignedNonAdminToken(t *testing.T) {
	g, mem, clock := newGate(t, Options{Password: "pw"})
	ctx := context.Background()

	now := clock.Now()
	token, err := encode(&Session{Role: "guest", IssuedAt: now, ExpiresAt: now.Add(time.Hour)}, testKey)
	require.NoError(t, err)
	require.NoError(t, mem.Set(ctx, Key, token))

	require.NotNil(t, g.Current(ctx))
	assert.False(t, g.Authenticated(ctx))
}

func TestGate_WithStore(t *testing.T) {
	g, _, _ := newGate(t, Options{Password: "pw"})
	ctx := context.Background()

	other := storage.NewMemoryStorage()
	bound := g.WithStore(other)

	_, err := bound.Login(ctx, "pw")
	require.NoError(t, err)

	assert.True(t, bound.Authenticated(ctx))
	assert.False(t, g.Authenticated(ctx))
}

func TestGate_PasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	g, _, _ := newGate(t, Options{PasswordHash: hash, Password: "ignored"})
	ctx := context.Background()

	_, err = g.Login(ctx, "ignored")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	s, err := g.Login(ctx, "s3cret")
	require.NoError(t, err)
	assert.True(t, g.Check(s))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}
