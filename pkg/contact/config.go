package contact

import "time"

const (
	// DefaultToEmail receives submissions when CONTACT_TO_EMAIL is unset.
	DefaultToEmail = "sengikustudio@gmail.com"

	// DefaultFromEmail is the provider-owned sender used when CONTACT_FROM_EMAIL
	// is missing or malformed.
	DefaultFromEmail = "onboarding@resend.dev"

	// DefaultSubject replaces an empty subject.
	DefaultSubject = "New Contact Message"

	defaultSendTimeout = 10 * time.Second
)

// Config holds relay configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	// APIKey gates sending; the provider itself authenticates with its own copy.
	APIKey       string        `env:"RESEND_API_KEY"`
	ToEmail      string        `env:"CONTACT_TO_EMAIL" envDefault:"sengikustudio@gmail.com"`
	FromEmail    string        `env:"CONTACT_FROM_EMAIL"`
	SendTimeout  time.Duration `env:"CONTACT_SEND_TIMEOUT" envDefault:"10s"`
	SanitizeHTML bool          `env:"CONTACT_SANITIZE_HTML" envDefault:"false"`
}

func (c Config) destination() string {
	if c.ToEmail == "" {
		return DefaultToEmail
	}
	return c.ToEmail
}

func (c Config) sendTimeout() time.Duration {
	if c.SendTimeout <= 0 {
		return defaultSendTimeout
	}
	return c.SendTimeout
}
