// Package config builds the server configuration: defaults first, then an
// optional TOML file, then environment variables (a .env file is loaded into
// the environment by the binary at startup).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds runtime settings for the portfolio server.
type Config struct {
	Addr      string `toml:"addr"`
	Mode      string `toml:"mode"` // gin mode: "debug", "release" or "test"
	StaticDir string `toml:"static_dir"`
	IDScheme  string `toml:"id_scheme"` // "timestamp" (default) or "uuid"

	Log     LogConfig     `toml:"log"`
	Admin   AdminConfig   `toml:"admin"`
	Storage StorageConfig `toml:"storage"`
	SMTP    SMTPConfig    `toml:"smtp"`
	Contact ContactConfig `toml:"contact"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "text" or "json"
}

// AdminConfig configures the single shared admin password and the session
// cookie. PasswordHash, when set, is a bcrypt hash and takes precedence over
// Password. An empty SessionSecret means a random one per process.
type AdminConfig struct {
	Password      string        `toml:"password"`
	PasswordHash  string        `toml:"password_hash"`
	SessionSecret string        `toml:"session_secret"`
	SessionTTL    time.Duration `toml:"session_ttl"`
	SecureCookie  bool          `toml:"secure_cookie"`
}

// StorageConfig uses a tagged union pattern - Type decides which of the other
// fields are relevant.
type StorageConfig struct {
	Type string `toml:"type"` // "memory", "file", "sqlite", "mongo" or "s3"

	// file
	DataDir string `toml:"data_dir,omitempty"`

	// sqlite
	SQLitePath string `toml:"sqlite_path,omitempty"`

	// mongo
	MongoURI        string `toml:"mongo_uri,omitempty"`
	MongoDatabase   string `toml:"mongo_database,omitempty"`
	MongoCollection string `toml:"mongo_collection,omitempty"`

	// s3
	S3Bucket    string `toml:"s3_bucket,omitempty"`
	S3Prefix    string `toml:"s3_prefix,omitempty"`
	S3Region    string `toml:"s3_region,omitempty"`
	S3Endpoint  string `toml:"s3_endpoint,omitempty"`
	S3AccessKey string `toml:"s3_access_key,omitempty"`
	S3SecretKey string `toml:"s3_secret_key,omitempty"`
}

type SMTPConfig struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
	User string `toml:"user"`
	Pass string `toml:"pass"`
	To   string `toml:"to"`
}

// ContactConfig limits contact form submissions per client IP.
type ContactConfig struct {
	RateLimitPerMinute int `toml:"rate_limit_per_minute"`
	Burst              int `toml:"burst"`
}

// Default returns the development defaults.
func Default() *Config {
	return &Config{
		Addr:      ":8080",
		Mode:      "debug",
		StaticDir: "./static",
		IDScheme:  "timestamp",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Admin: AdminConfig{
			SessionTTL: 24 * time.Hour,
		},
		Storage: StorageConfig{
			Type:            "sqlite",
			DataDir:         "./data",
			SQLitePath:      "portfolio.db",
			MongoDatabase:   "portfolio",
			MongoCollection: "content",
			S3Prefix:        "portfolio/",
			S3Region:        "us-east-1",
		},
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: "587",
		},
		Contact: ContactConfig{
			RateLimitPerMinute: 5,
			Burst:              3,
		},
	}
}

// Load applies defaults, then the TOML file at path (or $PORTFOLIO_CONFIG
// when path is empty; no file is fine), then the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("PORTFOLIO_CONFIG")
	}
	if path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.overlayEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) overlayFile(path string) error {
	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("reading config from %s: %w", path, err)
	}
	return nil
}

// overlayEnv copies every set variable over the current value. lookup is
// os.LookupEnv outside of tests.
func (c *Config) overlayEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup("PORT"); ok && v != "" {
		c.Addr = ":" + strings.TrimPrefix(v, ":")
	}
	str("ADDR", &c.Addr)
	str("GIN_MODE", &c.Mode)
	str("STATIC_DIR", &c.StaticDir)
	str("ID_SCHEME", &c.IDScheme)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)

	str("ADMIN_PASSWORD", &c.Admin.Password)
	str("ADMIN_PASSWORD_HASH", &c.Admin.PasswordHash)
	str("SESSION_SECRET", &c.Admin.SessionSecret)
	if v, ok := lookup("SESSION_TTL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SESSION_TTL: %w", err)
		}
		c.Admin.SessionTTL = d
	}
	if v, ok := lookup("SECURE_COOKIE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SECURE_COOKIE: %w", err)
		}
		c.Admin.SecureCookie = b
	}

	str("STORAGE_TYPE", &c.Storage.Type)
	str("DATA_DIR", &c.Storage.DataDir)
	str("SQLITE_PATH", &c.Storage.SQLitePath)
	str("MONGODB_URI", &c.Storage.MongoURI)
	str("MONGODB_DATABASE", &c.Storage.MongoDatabase)
	str("MONGODB_COLLECTION", &c.Storage.MongoCollection)
	str("S3_BUCKET", &c.Storage.S3Bucket)
	str("S3_PREFIX", &c.Storage.S3Prefix)
	str("S3_REGION", &c.Storage.S3Region)
	str("S3_ENDPOINT", &c.Storage.S3Endpoint)
	str("S3_ACCESS_KEY", &c.Storage.S3AccessKey)
	str("S3_SECRET_KEY", &c.Storage.S3SecretKey)

	str("SMTP_HOST", &c.SMTP.Host)
	str("SMTP_PORT", &c.SMTP.Port)
	str("SMTP_USER", &c.SMTP.User)
	str("SMTP_PASS", &c.SMTP.Pass)
	str("TO_EMAIL", &c.SMTP.To)

	for name, dst := range map[string]*int{
		"CONTACT_RATE_LIMIT": &c.Contact.RateLimitPerMinute,
		"CONTACT_BURST":      &c.Contact.Burst,
	} {
		if v, ok := lookup(name); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			*dst = n
		}
	}
	return nil
}

// Validate rejects values the server cannot start with.
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case "memory", "file", "sqlite", "mongo", "s3":
	default:
		return fmt.Errorf("unknown storage type: %s", c.Storage.Type)
	}
	switch c.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown gin mode: %s", c.Mode)
	}
	switch c.IDScheme {
	case "timestamp", "uuid":
	default:
		return fmt.Errorf("unknown id scheme: %s", c.IDScheme)
	}
	if c.Admin.SessionTTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", c.Admin.SessionTTL)
	}
	return nil
}
