package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DATABASE_PATH", "PORT", "NOTIFIERS", "TIMER_REARM_HOURS", "STORE_TIMEOUT", "NOTIFY_TIMEOUT", "DISCORD_CHANNELS", "API_TOKEN"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "./timekeeper.db", cfg.DatabasePath)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, []string{"slack"}, cfg.Notifiers)
	assert.Zero(t, cfg.RearmAfter)
	assert.Equal(t, 10*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 15*time.Second, cfg.NotifyTimeout)
	assert.Empty(t, cfg.DiscordChannels)
	assert.Empty(t, cfg.APIToken)
	assert.True(t, cfg.NotifierEnabled("slack"))
	assert.False(t, cfg.NotifierEnabled("mqtt"))
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("NOTIFIERS", "Slack, mqtt,,discord")
	t.Setenv("TIMER_REARM_HOURS", "48")
	t.Setenv("STORE_TIMEOUT", "3s")
	t.Setenv("NOTIFY_TIMEOUT", "not-a-duration")
	t.Setenv("NOTIFY_RATE_PER_SEC", "5")
	t.Setenv("DISCORD_CHANNELS", "C123=998877, broken ,C456=112233")
	t.Setenv("API_TOKEN", "s3cret")

	cfg := Load()

	assert.Equal(t, "s3cret", cfg.APIToken)
	assert.Equal(t, []string{"slack", "mqtt", "discord"}, cfg.Notifiers)
	assert.Equal(t, 48*time.Hour, cfg.RearmAfter)
	assert.Equal(t, 3*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 15*time.Second, cfg.NotifyTimeout)
	assert.Equal(t, 5, cfg.NotifyRatePerSec)
	assert.Equal(t, map[string]string{"C123": "998877", "C456": "112233"}, cfg.DiscordChannels)
	assert.True(t, cfg.NotifierEnabled("discord"))
}
