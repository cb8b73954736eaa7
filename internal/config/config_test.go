package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validConfig() config.Config {
	c := config.New()
	c.Postgres.User = "postgres"
	c.Postgres.Password = "postgres"
	c.Payment.KeyID = "key"
	c.Payment.Secret = "secret"
	return c
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(c *config.Config)
		wantErr bool
	}{
		{name: "defaults with credentials", modify: func(c *config.Config) {}},
		{name: "unknown env", modify: func(c *config.Config) { c.Env = "qa" }, wantErr: true},
		{name: "missing payment secret", modify: func(c *config.Config) { c.Payment.Secret = "" }, wantErr: true},
		{name: "bad currency", modify: func(c *config.Config) { c.Payment.Currency = "RUPEE" }, wantErr: true},
		{name: "redis without addr", modify: func(c *config.Config) { c.Cache.Driver = "redis" }, wantErr: true},
		{name: "redis with addr", modify: func(c *config.Config) { c.Cache.Driver = "redis"; c.Cache.RedisAddr = "localhost:6379" }},
		{name: "unknown cache driver", modify: func(c *config.Config) { c.Cache.Driver = "memcached" }, wantErr: true},
		{name: "bad broker", modify: func(c *config.Config) { c.Kafka.Brokers = []string{"kafka"} }, wantErr: true},
		{name: "bad smtp sender", modify: func(c *config.Config) { c.SMTP.Host = "smtp.example.com"; c.SMTP.From = "shop" }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfig()
			tc.modify(&c)
			err := c.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("PRICING_TAX_RATE", "0.18")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("POSTGRES_PORT", "not-a-number")

	c := config.New()

	assert.Equal(t, 30*time.Second, c.Cache.TTL)
	assert.True(t, c.Pricing.TaxRate.Equal(decimal.RequireFromString("0.18")))
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.Kafka.Brokers)
	assert.Equal(t, 5432, c.Postgres.Port)
}

func TestNew_MigrationDefaults(t *testing.T) {
	c := config.New()
	assert.True(t, c.Postgres.Migrate)
	assert.False(t, c.Postgres.SeedDemo, "demo data must be opt-in")

	t.Setenv("POSTGRES_SEED_DEMO", "true")
	assert.True(t, config.New().Postgres.SeedDemo)
}
