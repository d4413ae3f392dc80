package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"marketplace.db"`

	Stripe Stripe `envPrefix:"STRIPE_"`
	SMTP   SMTP   `envPrefix:"SMTP_"`
	JWT    JWT    `envPrefix:"JWT_"`
}

type Stripe struct {
	SecretKey     string `env:"SECRET_KEY"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
	Currency      string `env:"CURRENCY" envDefault:"usd"`
}

type SMTP struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"587"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM" envDefault:"noreply@linkmarket.io"`
}

type JWT struct {
	Secret string `env:"SECRET"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
