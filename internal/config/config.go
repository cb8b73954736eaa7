package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const EnvDevelopment = "development"

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Cache Cache

	Payment Payment `validate:"required"`

	Pricing Pricing

	SMTP SMTP
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID           string   `validate:"required"`
	Brokers           []string `validate:"required,min=1,dive,hostname_port"`
	NotificationTopic string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	ConnectAttempts int `validate:"gte=0"`
	Migrate         bool
	SeedDemo        bool
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Cache struct {
	Driver    string        `validate:"oneof=memory redis"`
	Capacity  int           `validate:"gte=1"`
	TTL       time.Duration `validate:"gt=0"`
	RedisAddr string        `validate:"required_if=Driver redis"`
}

type Payment struct {
	BaseURL  string        `validate:"required,url"`
	KeyID    string        `validate:"required"`
	Secret   string        `validate:"required"`
	Currency string        `validate:"required,len=3"`
	Timeout  time.Duration `validate:"gt=0"`
}

// Pricing holds the charges applied on top of the item subtotal.
type Pricing struct {
	TaxRate     decimal.Decimal
	ShippingFee decimal.Decimal
}

type SMTP struct {
	Host     string `validate:"omitempty,hostname|ip"`
	Port     int    `validate:"omitempty,gt=0,lte=65535"`
	From     string `validate:"omitempty,email"`
	User     string
	Password string
}

func New() Config {
	return Config{
		Env: env("ENV", EnvDevelopment),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID:           env("KAFKA_GROUP_ID", "order-notifications"),
			NotificationTopic: env("KAFKA_NOTIFICATION_TOPIC", "order-placed"),
			Brokers:           strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "storefront"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),

			ConnectAttempts: envInt("POSTGRES_CONNECT_ATTEMPTS", 5),
			Migrate:         env("POSTGRES_MIGRATE", "true") == "true",
			SeedDemo:        env("POSTGRES_SEED_DEMO", "false") == "true",
		},

		Cache: Cache{
			Driver:    env("CACHE_DRIVER", "memory"),
			Capacity:  envInt("CACHE_CAPACITY", 1000),
			TTL:       envDuration("CACHE_TTL", 10*time.Minute),
			RedisAddr: env("REDIS_ADDR", ""),
		},

		Payment: Payment{
			BaseURL:  env("PAYMENT_GATEWAY_URL", "https://api.razorpay.com"),
			KeyID:    env("PAYMENT_KEY_ID", ""),
			Secret:   env("PAYMENT_SECRET", ""),
			Currency: env("PAYMENT_CURRENCY", "INR"),
			Timeout:  envDuration("PAYMENT_TIMEOUT", 10*time.Second),
		},

		Pricing: Pricing{
			TaxRate:     envDecimal("PRICING_TAX_RATE", decimal.Zero),
			ShippingFee: envDecimal("PRICING_SHIPPING_FEE", decimal.Zero),
		},

		SMTP: SMTP{
			Host:     env("SMTP_HOST", ""),
			Port:     envInt("SMTP_PORT", 587),
			From:     env("SMTP_FROM", ""),
			User:     env("SMTP_USER", ""),
			Password: env("SMTP_PASSWORD", ""),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func envDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	if value, ok := os.LookupEnv(key); ok {
		d, err := decimal.NewFromString(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
