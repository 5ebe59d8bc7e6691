package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
)

var knownWeakSecrets = []string{
	"change-me", "dev-secret-change-me", "secret", "admin", "password",
}

type Config struct {
	Port          int    `env:"PORT" envDefault:"3000"`
	DatabaseURL   string `env:"DATABASE_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`
	JWTSecret     string `env:"JWT_SECRET,required"`
	SMTPHost      string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort      int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser      string `env:"EMAIL"`
	SMTPPassword  string `env:"EMAIL_PASSWORD"`
	MailFrom      string `env:"MAIL_FROM"`
	RAGServiceURL string `env:"RAG_SERVICE_URL" envDefault:"http://localhost:5000"`
	OTPTTLMinutes int    `env:"OTP_TTL_MINUTES" envDefault:"10"`
	TokenTTLHours int    `env:"TOKEN_TTL_HOURS" envDefault:"72"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) OTPTTL() time.Duration {
	return time.Duration(c.OTPTTLMinutes) * time.Minute
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

// From is the sender address for outbound mail. Falls back to the SMTP user
// when MAIL_FROM is not set.
func (c *Config) From() string {
	if c.MailFrom != "" {
		return c.MailFrom
	}
	return c.SMTPUser
}

func (c *Config) Validate(isProduction bool) error {
	if isProduction {
		if err := validateSecret("JWT_SECRET", c.JWTSecret); err != nil {
			return err
		}
		if c.SMTPUser == "" || c.SMTPPassword == "" {
			log.Warn().Msg("EMAIL/EMAIL_PASSWORD are empty in production: OTP delivery will fail")
		}
	}
	return nil
}

func validateSecret(name, value string) error {
	if len(value) < 32 {
		return fmt.Errorf("%s must be at least 32 characters in production (generate with: openssl rand -base64 32)", name)
	}
	for _, weak := range knownWeakSecrets {
		if value == weak {
			return fmt.Errorf("%s is a known weak default; set a strong secret in production", name)
		}
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
