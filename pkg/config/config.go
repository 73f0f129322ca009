package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	TLS      TLS
	Logger   Logger
	Postgres Postgres
	Mailer   Mailer
	Vendor   Vendor
	Kafka    Kafka
	Jobs     Jobs
}

// HTTP.APIKey guards the admin routes and has no default.
type HTTP struct {
	Port        int      `env:"HTTP_PORT" envDefault:"8080"`
	APIKey      string   `env:"HTTP_API_KEY"`
	CORSOrigins []string `env:"HTTP_CORS_ORIGINS" envDefault:"*"`
}

// TLS is optional. The server falls back to plain HTTP when no server
// certificate is configured.
type TLS struct {
	ServerCert  string `env:"TLS_SERVER_CERT" envDefault:""`
	ServerKey   string `env:"TLS_SERVER_KEY" envDefault:""`
	CACert      string `env:"TLS_CA_CERT" envDefault:""`
	MTLSEnabled bool   `env:"MTLS_ENABLED" envDefault:"false"`
}

func (t TLS) Enabled() bool {
	return t.ServerCert != ""
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Mailer struct {
	Host       string        `env:"MAILER_HOST"`
	Port       int           `env:"MAILER_PORT" envDefault:"587"`
	Login      string        `env:"MAILER_LOGIN" envDefault:""`
	Password   string        `env:"MAILER_PASSWORD" envDefault:""`
	From       string        `env:"MAILER_FROM"`
	FromName   string        `env:"MAILER_FROM_NAME" envDefault:"Immutable Post"`
	Retries    uint64        `env:"MAILER_RETRIES" envDefault:"2"`
	RetryDelay time.Duration `env:"MAILER_RETRY_DELAY" envDefault:"500ms"`
}

// Vendor is the plugin vendor's identity, shown in the From block of the
// vendor notice, and its invoice distribution mailbox.
type Vendor struct {
	Name    string `env:"VENDOR_NAME"`
	Address string `env:"VENDOR_ADDRESS" envDefault:""`
	Country string `env:"VENDOR_COUNTRY" envDefault:"Australia"`
	Phone   string `env:"VENDOR_PHONE" envDefault:""`
	Email   string `env:"VENDOR_EMAIL"`
}

type Kafka struct {
	Enabled         bool          `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers         []string      `env:"KAFKA_BROKERS" envDefault:"kafka:9092"`
	ConsumerID      string        `env:"KAFKA_CONSUMER_ID" envDefault:"immutablepost"`
	SubmissionTopic string        `env:"KAFKA_SUBMISSION_TOPIC" envDefault:"immutablepost-submissions"`
	NotifiedTopic   string        `env:"KAFKA_NOTIFIED_TOPIC" envDefault:"immutablepost-invoices-notified"`
	HandlerRetries  uint64        `env:"KAFKA_HANDLER_RETRIES" envDefault:"3"`
	HandlerDelay    time.Duration `env:"KAFKA_HANDLER_RETRY_DELAY" envDefault:"1s"`
}

type Jobs struct {
	ResendEnabled     bool          `env:"JOB_RESEND_ENABLED" envDefault:"true"`
	ResendInterval    time.Duration `env:"JOB_RESEND_INTERVAL" envDefault:"5m"`
	ResendTimeout     time.Duration `env:"JOB_RESEND_TIMEOUT" envDefault:"2m"`
	ResendMaxAttempts int           `env:"JOB_RESEND_MAX_ATTEMPTS" envDefault:"5"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	if c.HTTP.APIKey == "" {
		return Config{}, errors.New("HTTP_API_KEY must not be empty")
	}

	err = c.TLS.checkFiles()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

func (t TLS) checkFiles() error {
	if !t.Enabled() {
		return nil
	}

	requiredFiles := []struct {
		name string
		val  string
	}{
		{"TLS_SERVER_CERT", t.ServerCert},
		{"TLS_SERVER_KEY", t.ServerKey},
	}

	if t.MTLSEnabled {
		requiredFiles = append(requiredFiles, struct{ name, val string }{"TLS_CA_CERT", t.CACert})
	}

	for _, path := range requiredFiles {
		if _, err := os.Stat(path.val); err != nil {
			return fmt.Errorf("missing TLS file for %s: %q", path.name, path.val)
		}
	}

	return nil
}
