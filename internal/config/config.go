package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	Port               string
	APIToken           string // bearer token for the JSON timer routes; empty disables them

	// Notifiers lists the enabled sinks: slack, discord, mqtt
	Notifiers        []string
	NotifyRatePerSec int
	DiscordBotToken  string
	DiscordChannels  map[string]string // slack channel id -> discord channel id
	MQTTBroker       string
	MQTTTopic        string
	MQTTClientID     string

	RearmAfter    time.Duration
	StoreTimeout  time.Duration
	NotifyTimeout time.Duration

	LogLevel  string
	LogFormat string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./timekeeper.db"),
		Port:               getEnv("PORT", "3000"),
		APIToken:           getEnv("API_TOKEN", ""),

		Notifiers:        getEnvList("NOTIFIERS", []string{"slack"}),
		NotifyRatePerSec: getEnvInt("NOTIFY_RATE_PER_SEC", 1),
		DiscordBotToken:  getEnv("DISCORD_BOT_TOKEN", ""),
		DiscordChannels:  getEnvMap("DISCORD_CHANNELS"),
		MQTTBroker:       getEnv("MQTT_BROKER", "tcp://localhost:1883"),
		MQTTTopic:        getEnv("MQTT_TOPIC", "league/timekeeper"),
		MQTTClientID:     getEnv("MQTT_CLIENT_ID", "league-timekeeper"),

		RearmAfter:    time.Duration(getEnvInt("TIMER_REARM_HOURS", 0)) * time.Hour,
		StoreTimeout:  getEnvDuration("STORE_TIMEOUT", 10*time.Second),
		NotifyTimeout: getEnvDuration("NOTIFY_TIMEOUT", 15*time.Second),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

// NotifierEnabled reports whether the named sink is listed in NOTIFIERS
func (c *Config) NotifierEnabled(name string) bool {
	for _, n := range c.Notifiers {
		if n == name {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func getEnvList(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}

	var list []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.ToLower(strings.TrimSpace(item)); item != "" {
			list = append(list, item)
		}
	}
	return list
}

// getEnvMap parses "a=b,c=d" pairs, ignoring malformed entries
func getEnvMap(key string) map[string]string {
	m := map[string]string{}
	for _, pair := range strings.Split(getEnv(key, ""), ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || k == "" || v == "" {
			continue
		}
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return m
}
