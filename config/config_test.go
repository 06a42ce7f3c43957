package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SCHED_TEST_SET", "value")
	t.Setenv("SCHED_TEST_EMPTY", "")

	assert.Equal(t, "value", getEnv("SCHED_TEST_SET", "fallback"))
	assert.Equal(t, "", getEnv("SCHED_TEST_EMPTY", "fallback"))
	assert.Equal(t, "fallback", getEnv("SCHED_TEST_UNSET_KEY", "fallback"))
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("DB_URL", "memory")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_x")
	t.Setenv("LOG_LEVEL", "debug")

	LoadEnv()

	assert.Equal(t, "9090", PORT)
	assert.Equal(t, MemoryStore, DB_URL)
	assert.Equal(t, "secret", JWT_SECRET)
	assert.Equal(t, "whsec_x", STRIPE_WEBHOOK_SECRET)
	assert.Equal(t, "debug", LOG_LEVEL)
}
