package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/telemetry"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: validate_config <config-file>")
		os.Exit(1)
	}

	configPath := os.Args[1]
	fmt.Printf("Loading config from: %s\n", configPath)

	cfg, err := telemetry.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Config loaded successfully!")
	fmt.Printf("   MQTT Broker:   %s:%d\n", cfg.MQTT.Broker, cfg.MQTT.Port)
	fmt.Printf("   Client ID:     %s\n", cfg.MQTT.ClientID)
	fmt.Printf("   Topic Prefix:  %s\n", cfg.Publish.TopicPrefix)
	fmt.Printf("   Poll Interval: %ds\n", cfg.Publish.PollInterval)
	fmt.Printf("   Sources:       %s\n", strings.Join(cfg.Publish.Sources, ", "))

	fmt.Println("\nConfiguration is valid!")
}
