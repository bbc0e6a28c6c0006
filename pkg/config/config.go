package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/sengiku/studio/pkg/contact"
	"github.com/sengiku/studio/pkg/logger"
	"github.com/sengiku/studio/pkg/mailer/resend"
)

// DefaultEnvFile is loaded when Load is called without explicit files.
const DefaultEnvFile = ".env"

// App holds server-level settings.
type App struct {
	Address            string        `env:"ADDRESS" envDefault:":8080"`
	Env                string        `env:"APP_ENV" envDefault:"production"`
	SiteURL            string        `env:"SITE_URL" envDefault:"https://sengiku.studio"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// IsDev reports whether the server runs outside production.
func (a App) IsDev() bool {
	return !strings.EqualFold(strings.TrimSpace(a.Env), "production")
}

// Origins returns the trimmed, non-empty CORS origins.
func (a App) Origins() []string {
	origins := make([]string, 0, len(a.CORSAllowedOrigins))
	for _, o := range a.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" && !slices.Contains(origins, o) {
			origins = append(origins, o)
		}
	}
	return origins
}

// Config is the studio server configuration, read once at startup.
type Config struct {
	App     App
	Logger  logger.Config
	Sentry  logger.SentryConfig
	Resend  resend.Config
	Contact contact.Config
}

// Load reads the given .env files (DefaultEnvFile when none are given) into the
// process environment and parses it into v. Missing files are skipped and
// variables already set in the environment win.
func Load(v any, envFiles ...string) error {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	if err := env.Parse(v); err != nil {
		return fmt.Errorf("config: parse environment: %w", err)
	}
	return nil
}

// MustLoad is like Load but panics on failure. Use it during startup only.
func MustLoad(v any, envFiles ...string) {
	if err := Load(v, envFiles...); err != nil {
		panic(err)
	}
}
