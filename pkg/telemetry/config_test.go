package telemetry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		MQTT: MQTTConfig{
			Broker:   "localhost",
			Port:     1883,
			ClientID: "sdl1000x-telemetry",
		},
		Publish: PublishConfig{
			TopicPrefix:  "lab/load1",
			PollInterval: 10,
			Sources:      []string{"voltage", "current", "power"},
		},
	}
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing broker", func(c *Config) { c.MQTT.Broker = "" }},
		{"zero port", func(c *Config) { c.MQTT.Port = 0 }},
		{"negative port", func(c *Config) { c.MQTT.Port = -1 }},
		{"missing client id", func(c *Config) { c.MQTT.ClientID = "" }},
		{"missing topic prefix", func(c *Config) { c.Publish.TopicPrefix = "" }},
		{"zero poll interval", func(c *Config) { c.Publish.PollInterval = 0 }},
		{"no sources", func(c *Config) { c.Publish.Sources = nil }},
		{"unknown source", func(c *Config) { c.Publish.Sources = []string{"resistance"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
mqtt:
  broker: broker.lab.local
  port: 1883
  client_id: sdl1000x-telemetry
  retry_delay: 2000
publish:
  topic_prefix: lab/load1
  poll_interval: 5
  sources:
    - voltage
    - current
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "broker.lab.local", cfg.MQTT.Broker)
	assert.Equal(t, 2000, cfg.MQTT.RetryDelay)
	assert.Equal(t, 5, cfg.Publish.PollInterval)
	assert.Equal(t, []string{"voltage", "current"}, cfg.Publish.Sources)
}

func TestLoadConfigRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
mqtt:
  broker: broker.lab.local
  port: 1883
  client_id: sdl1000x-telemetry
publish:
  topic_prefix: lab/load1
  poll_interval: 0
  sources: [voltage]
`), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}
