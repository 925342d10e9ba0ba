package storage

import (
	"context"
	"net/http"
	"time"

	"github.com/Zachkp/portfolio/internal/common"

	"github.com/gin-gonic/gin"
)

// CookieOptions controls the cookies written by CookieStorage.
type CookieOptions struct {
	MaxAge time.Duration
	Path   string
	Secure bool
}

// CookieStorage is a Storage over the cookies of one gin request: Get reads
// the request, Set and Delete write the response. Writes are also remembered
// so later reads in the same request see them.
type CookieStorage struct {
	c       *gin.Context
	opts    CookieOptions
	pending map[string]*string // nil value means deleted
}

func NewCookieStorage(c *gin.Context, opts CookieOptions) *CookieStorage {
	if opts.Path == "" {
		opts.Path = "/"
	}
	return &CookieStorage{c: c, opts: opts, pending: make(map[string]*string)}
}

func (s *CookieStorage) Get(_ context.Context, key string) (string, error) {
	if v, ok := s.pending[key]; ok {
		if v == nil {
			return "", common.ErrNotFound
		}
		return *v, nil
	}

	v, err := s.c.Cookie(key)
	if err != nil || v == "" {
		return "", common.ErrNotFound
	}
	return v, nil
}

func (s *CookieStorage) Set(_ context.Context, key, value string) error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, value, int(s.opts.MaxAge.Seconds()), s.opts.Path, "", s.opts.Secure, true)
	s.pending[key] = &value
	return nil
}

func (s *CookieStorage) Delete(_ context.Context, key string) error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, "", -1, s.opts.Path, "", s.opts.Secure, true)
	s.pending[key] = nil
	return nil
}

var _ Storage = (*CookieStorage)(nil)
