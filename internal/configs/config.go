package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"land-catalog/internal/constants"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type DBconfig struct {
	URL             string        `env:"DATABASE_URL"`
	MaxConns        int32         `env:"DATABASE_MAX_CONNS" envDefault:"10"`
	MaxConnLifetime time.Duration `env:"DATABASE_MAX_CONN_LIFETIME" envDefault:"30m"`
}

type RESTconfig struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

type RedisConfig struct {
	URL string `env:"REDIS_URL"` // пусто - кэш в памяти процесса
}

type RabbitMQConfig struct {
	Enabled       bool   `env:"RABBITMQ_ENABLED" envDefault:"false"`
	URL           string `env:"RABBITMQ_URL"`
	LeadsExchange string `env:"LEADS_EXCHANGE" envDefault:"leads"`
}

type StdoutLogConfig struct {
	Level string `env:"STDOUT_LOG_LEVEL" envDefault:"debug"`
	JSON  bool   `env:"STDOUT_LOG_JSON" envDefault:"false"`
}

type FluentBitConfig struct {
	Enabled bool   `env:"FLUENTBIT_ENABLED" envDefault:"false"`
	Host    string `env:"FLUENTBIT_HOST"`
	Port    int    `env:"FLUENTBIT_PORT" envDefault:"24224"`
	Level   string `env:"FLUENTBIT_LOG_LEVEL" envDefault:"info"`
}

type PromoConfig struct {
	DiscountPercent int           `env:"PROMO_DISCOUNT_PERCENT" envDefault:"5"`
	Validity        time.Duration `env:"PROMO_VALIDITY" envDefault:"720h"`
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName         string        `env:"APP_NAME" envDefault:"land-catalog"`
	StorageDriver   string        `env:"STORAGE_DRIVER" envDefault:"postgres"`
	LedgerTxTimeout time.Duration `env:"LEDGER_TX_TIMEOUT" envDefault:"5s"`
	ContactCacheTTL time.Duration `env:"CONTACT_CACHE_TTL" envDefault:"24h"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Database     DBconfig
	Rest         RESTconfig
	Redis        RedisConfig
	RabbitMQ     RabbitMQConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
	Promo        PromoConfig
}

// LoadConfig загружает .env (если он есть) и читает конфигурацию из переменных окружения.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath...)
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		// Без .env работаем на переменных окружения процесса
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load .env file (path: %v): %w", envPath, err)
		}
		log.Printf("Info: .env file not found (path: %v), using process environment", envPath)
	}

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) validate() error {
	c.StorageDriver = strings.ToLower(strings.TrimSpace(c.StorageDriver))
	switch c.StorageDriver {
	case constants.StorageDriverPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required for STORAGE_DRIVER=postgres")
		}
	case constants.StorageDriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.RabbitMQ.Enabled && c.RabbitMQ.URL == "" {
		return fmt.Errorf("RABBITMQ_URL environment variable is required when RABBITMQ_ENABLED is true")
	}

	if c.FluentBit.Enabled && c.FluentBit.Host == "" {
		log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
		c.FluentBit.Enabled = false
	}

	if c.Promo.DiscountPercent < 1 || c.Promo.DiscountPercent > 100 {
		return fmt.Errorf("PROMO_DISCOUNT_PERCENT must be within 1..100, got %d", c.Promo.DiscountPercent)
	}
	if c.Promo.Validity <= 0 {
		return fmt.Errorf("PROMO_VALIDITY must be positive")
	}
	if c.LedgerTxTimeout <= 0 {
		return fmt.Errorf("LEDGER_TX_TIMEOUT must be positive")
	}
	if c.ContactCacheTTL <= 0 {
		return fmt.Errorf("CONTACT_CACHE_TTL must be positive")
	}
	return nil
}
