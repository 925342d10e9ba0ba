package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Zachkp/portfolio/internal/common"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/mail"
	"github.com/Zachkp/portfolio/internal/middleware"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/storage"

	"github.com/gin-gonic/gin"
)

const defaultAdminPassword = "admin123"

// app holds everything the HTTP handlers and CLI commands share.
type app struct {
	cfg     *config.Config
	logger  logging.Logger
	storage storage.Storage
	catalog *content.Catalog
	gate    *session.Gate
	mailer  mail.Sender
	limiter *middleware.LimiterStore

	// salts hashIP so client addresses never reach the logs
	ipSalt string
}

// newApp loads the config and opens the configured backend. The caller must
// call Close.
func newApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	logger := logging.New(os.Stderr, cfg.Log.Format, cfg.Log.Level)

	s, err := storage.NewFromConfig(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("opening %s storage: %w", cfg.Storage.Type, err)
	}

	a, err := assemble(cfg, logger, s, common.RealClock{})
	if err != nil {
		_ = storage.Close(ctx, s)
		return nil, err
	}
	a.mailer = mail.NewSMTPSender(cfg.SMTP)
	return a, nil
}

// assemble wires the domain layers over an already opened backend.
func assemble(cfg *config.Config, logger logging.Logger, s storage.Storage, clock common.Clock) (*app, error) {
	ctx := context.Background()

	secret := cfg.Admin.SessionSecret
	if secret == "" {
		secret = generateAdminToken()
		logger.Info(ctx, "no session secret configured, sessions will not survive a restart")
	}

	password := cfg.Admin.Password
	if password == "" && cfg.Admin.PasswordHash == "" {
		password = defaultAdminPassword
		logger.Warn(ctx, "using default admin password, set ADMIN_PASSWORD or ADMIN_PASSWORD_HASH")
		if cfg.Mode == gin.ReleaseMode {
			return nil, fmt.Errorf("an admin password must be configured in %s mode", gin.ReleaseMode)
		}
	}

	// the base gate has no store; handlers bind it to the request's cookies
	gate, err := session.NewGate(session.Options{
		Password:     password,
		PasswordHash: cfg.Admin.PasswordHash,
		SigningKey:   []byte(secret),
		TTL:          cfg.Admin.SessionTTL,
		Clock:        clock,
		Logger:       logger.With("component", "session"),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("initializing session gate: %w", err)
	}

	store := content.NewStore(s, logger.With("component", "content"))
	ids := content.NewIDGenerator(cfg.IDScheme, clock)

	return &app{
		cfg:     cfg,
		logger:  logger,
		storage: s,
		catalog: content.NewCatalog(store, ids, clock),
		gate:    gate,
		limiter: middleware.NewLimiterStore(cfg.Contact.RateLimitPerMinute, cfg.Contact.Burst, 0),
		ipSalt:  generateAdminToken(),
	}, nil
}

func (a *app) Close(ctx context.Context) {
	a.limiter.Stop()
	if err := storage.Close(ctx, a.storage); err != nil {
		a.logger.Warn(ctx, "closing storage", "error", err)
	}
}
