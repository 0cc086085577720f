package config

import "github.com/caarlos0/env/v11"

// Config holds application configuration
type Config struct {
	Version      string `env:"VERSION" envDefault:"0.1.0"`
	Port         int    `env:"PORT" envDefault:"3003"`
	Environment  string `env:"ENVIRONMENT" envDefault:"dev"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	SentryDSN    string `env:"SENTRY_DSN"`
	DatabaseURL  string `env:"DATABASE_URL,required,notEmpty"`
	DatabaseName string `env:"DATABASE_NAME" envDefault:"bloglist"`
	Secret       string `env:"SECRET,required,notEmpty"` // token signing key
	MaxBodyBytes int64  `env:"MAX_BODY_BYTES" envDefault:"102400"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsEnvProd() bool {
	if c.Environment == "prod" && c.SentryDSN != "" {
		return true
	}
	return false
}
