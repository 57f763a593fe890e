package logger

// Config holds environment-driven logger settings.
type Config struct {
	Service string `env:"APP_NAME" envDefault:"orgdb"`      // Service is attached to every record as "service".
	Env     string `env:"APP_ENV" envDefault:"development"` // Env selects format and level presets: development, staging or production.
	Level   string `env:"LOG_LEVEL"`                        // Level overrides the preset level: debug, info, warn or error.
}
