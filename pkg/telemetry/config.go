package telemetry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the telemetry service configuration. The driver core itself is
// config-free; only the optional publisher reads a file.
type Config struct {
	MQTT    MQTTConfig    `yaml:"mqtt"`
	Publish PublishConfig `yaml:"publish"`
	Logging LoggingConfig `yaml:"logging"`
}

// MQTTConfig contains broker connection settings
type MQTTConfig struct {
	Broker     string `yaml:"broker"`
	Port       int    `yaml:"port"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	ClientID   string `yaml:"client_id"`
	RetryDelay int    `yaml:"retry_delay"` // delay between connection retries in milliseconds
	KeepAlive  int    `yaml:"keep_alive"`  // keepalive interval in seconds
}

// PublishConfig contains polling and topic settings
type PublishConfig struct {
	TopicPrefix  string   `yaml:"topic_prefix"`
	PollInterval int      `yaml:"poll_interval"` // seconds between measurement polls
	Sources      []string `yaml:"sources"`       // measurement sources to poll, subset of voltage|current|power
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// LoadConfig loads the telemetry configuration from the given file, falling
// back to the conventional locations.
func LoadConfig(configPath string) (*Config, error) {
	paths := []string{
		configPath,
		"/etc/sdl1000x-telemetry/config.yaml",
		"/etc/sdl1000x-telemetry.yaml",
		"./config.yaml",
	}

	var data []byte
	var err error
	var usedPath string

	for _, path := range paths {
		if path == "" {
			continue
		}
		data, err = os.ReadFile(path)
		if err == nil {
			usedPath = path
			break
		}
	}

	if err != nil {
		return nil, fmt.Errorf("cannot read configuration file from any of the locations: %v. Last error: %w", paths, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing configuration from %s: %w", usedPath, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", usedPath, err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.MQTT.Broker == "" {
		return fmt.Errorf("MQTT broker is not specified")
	}
	if c.MQTT.Port <= 0 {
		return fmt.Errorf("MQTT port must be positive")
	}
	if c.MQTT.ClientID == "" {
		return fmt.Errorf("MQTT client ID is not specified")
	}
	if c.Publish.TopicPrefix == "" {
		return fmt.Errorf("topic prefix is not specified")
	}
	if c.Publish.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive")
	}
	if len(c.Publish.Sources) == 0 {
		return fmt.Errorf("no measurement sources are defined")
	}
	for _, s := range c.Publish.Sources {
		switch s {
		case "voltage", "current", "power":
		default:
			return fmt.Errorf("unknown measurement source %q", s)
		}
	}
	return nil
}
