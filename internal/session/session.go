// Package session gates the admin area behind one shared password. The
// session lives client-side in a signed token; the server keeps no session
// state.
package session

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/Zachkp/portfolio/internal/common"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

const (
	// Key is the storage key (and cookie name) the session token is kept under.
	Key = "admin_session"

	RoleAdmin = "admin"

	DefaultTTL = 24 * time.Hour
)

// Session is an authenticated admin login.
type Session struct {
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Options configures a Gate. Exactly one of Password or PasswordHash is
// expected; PasswordHash wins when both are set.
type Options struct {
	Password     string
	PasswordHash string // bcrypt
	SigningKey   []byte
	TTL          time.Duration
	Clock        common.Clock
	Logger       logging.Logger
}

// Gate logs the admin in and out and answers whether the current session is
// valid. A Gate bound to a per-request store is obtained through WithStore.
type Gate struct {
	opts  Options
	store storage.Storage
}

func NewGate(opts Options, store storage.Storage) (*Gate, error) {
	if len(opts.SigningKey) == 0 {
		return nil, errors.New("session signing key is empty")
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Clock == nil {
		opts.Clock = common.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &Gate{opts: opts, store: store}, nil
}

// WithStore returns a copy of g that persists sessions in s.
func (g *Gate) WithStore(s storage.Storage) *Gate {
	cp := *g
	cp.store = s
	return &cp
}

func (g *Gate) TTL() time.Duration { return g.opts.TTL }

// Login checks password against the configured secret and, on a match,
// persists and returns a fresh session.
func (g *Gate) Login(ctx context.Context, password string) (*Session, error) {
	if !g.matches(password) {
		return nil, common.ErrInvalidCredentials
	}

	// token timestamps have second precision
	now := g.opts.Clock.Now().UTC().Truncate(time.Second)
	s := &Session{
		Role:      RoleAdmin,
		IssuedAt:  now,
		ExpiresAt: now.Add(g.opts.TTL),
	}

	token, err := encode(s, g.opts.SigningKey)
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}
	if err := g.store.Set(ctx, Key, token); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return s, nil
}

// Check reports whether s is a live admin session.
func (g *Gate) Check(s *Session) bool {
	if s == nil || s.Role != RoleAdmin {
		return false
	}
	if !s.ExpiresAt.After(s.IssuedAt) {
		return false
	}
	return g.opts.Clock.Now().Before(s.ExpiresAt)
}

// Current returns the persisted session, or nil when there is none or it
// cannot be verified.
func (g *Gate) Current(ctx context.Context) *Session {
	token, err := g.store.Get(ctx, Key)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			g.opts.Logger.Warn(ctx, "session read failed", "error", err)
		}
		return nil
	}

	s, err := decode(token, g.opts.SigningKey)
	if err != nil {
		g.opts.Logger.Warn(ctx, "discarding unverifiable session", "error", err)
		return nil
	}
	return s
}

func (g *Gate) Authenticated(ctx context.Context) bool {
	return g.Check(g.Current(ctx))
}

// Require returns common.ErrSessionExpiredOrMissing unless a live session is
// persisted.
func (g *Gate) Require(ctx context.Context) (*Session, error) {
	s := g.Current(ctx)
	if !g.Check(s) {
		return nil, common.ErrSessionExpiredOrMissing
	}
	return s, nil
}

// Logout removes the persisted session.
func (g *Gate) Logout(ctx context.Context) error {
	if err := g.store.Delete(ctx, Key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (g *Gate) matches(password string) bool {
	if g.opts.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(g.opts.PasswordHash), []byte(password)) == nil
	}
	if g.opts.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(g.opts.Password)) == 1
}

// HashPassword returns the bcrypt hash to put in ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password is empty")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}
