package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, "./data/budgetwise.db", c.DatabasePath)
	assert.Equal(t, "dev-secret-key", c.SecretKey)
	assert.Equal(t, 24*time.Hour, c.TokenDuration)
	assert.Equal(t, 10, c.DemoUsers)
	assert.True(t, c.SeedOnStart)
}

func TestApplyEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("DEMO_USERS", "25")
	t.Setenv("SEED_ON_START", "false")
	t.Setenv("TOKEN_DURATION", "1h")

	var c Config
	c.LoadDefaults()
	c.ApplyEnv()

	assert.Equal(t, ":9090", c.Addr)
	assert.Equal(t, "/tmp/test.db", c.DatabasePath)
	assert.Equal(t, 25, c.DemoUsers)
	assert.False(t, c.SeedOnStart)
	assert.Equal(t, time.Hour, c.TokenDuration)
}

func TestApplyEnv_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("DEMO_USERS", "not-a-number")
	t.Setenv("SEED_ON_START", "maybe")
	t.Setenv("TOKEN_DURATION", "soon")

	var c Config
	c.LoadDefaults()
	c.ApplyEnv()

	assert.Equal(t, 10, c.DemoUsers)
	assert.True(t, c.SeedOnStart)
	assert.Equal(t, 24*time.Hour, c.TokenDuration)
}
