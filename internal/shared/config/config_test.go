package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "HASURA_TIMEOUT", "CORS_ORIGINS", "AUTHJWT_DENYLIST_ENABLED",
		"REDIS_HOST", "REDIS_PORT", "KAFKA_ENABLED", "DELIVERY_LOG_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, ":8000", cfg.GetServerAddress())
	assert.Equal(t, 10*time.Second, cfg.Hasura.Timeout)
	assert.Equal(t, []string{"*"}, cfg.CORS.Origins)
	assert.True(t, cfg.JWT.DenylistEnabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.False(t, cfg.Kafka.Enabled)
	assert.False(t, cfg.Database.Enabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("HASURA_ENDPOINT_URL", "http://hasura:8080/v1/graphql")
	t.Setenv("HASURA_GRAPHQL_ADMIN_SECRET", "admin")
	t.Setenv("HASURA_TIMEOUT", "3s")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("RATE_LIMIT_TICKET_REQUESTS", "not-a-number")
	t.Setenv("AUTHJWT_ACCESS_TOKEN_EXPIRES", "60")

	cfg := Load()

	assert.Equal(t, "http://hasura:8080/v1/graphql", cfg.Hasura.EndpointURL)
	assert.Equal(t, "admin", cfg.Hasura.AdminSecret)
	assert.Equal(t, 3*time.Second, cfg.Hasura.Timeout)
	assert.Equal(t, "redis:6380", cfg.Redis.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.Origins)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 20, cfg.RateLimit.TicketRequests, "invalid ints fall back to the default")
	assert.Equal(t, time.Minute, cfg.JWT.AccessExpiresIn)
}

func TestChecksDenylistFor(t *testing.T) {
	j := JWTConfig{DenylistEnabled: true, DenylistChecks: []string{"access"}}
	assert.True(t, j.ChecksDenylistFor("access"))
	assert.False(t, j.ChecksDenylistFor("refresh"))

	j.DenylistEnabled = false
	assert.False(t, j.ChecksDenylistFor("access"))
}
