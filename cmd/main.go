package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/logger"
	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/sdl"
	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/telemetry"
)

func main() {
	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	configPath := ""
	deviceAddr := ""
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--help", "-h":
			fmt.Printf("Usage: %s --device <host[:port]> [config_path]\n", os.Args[0])
			fmt.Printf("  --device:    address of the SDL1000X electronic load\n")
			fmt.Printf("  config_path: path to the telemetry configuration file (optional)\n")
			return
		case "--device":
			if i+1 < len(args) {
				i++
				deviceAddr = args[i]
			}
		default:
			configPath = args[i]
		}
	}
	if deviceAddr == "" {
		fmt.Fprintln(os.Stderr, "missing --device address")
		os.Exit(1)
	}

	cfg, err := telemetry.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	dev, err := sdl.Open(ctx, deviceAddr, sdl.WithLogger(log))
	if err != nil {
		log.Error("error connecting to instrument: %v", err)
		os.Exit(1)
	}
	defer dev.Close()

	publisher := telemetry.NewPublisher(cfg, log)
	if err := publisher.Connect(ctx); err != nil {
		log.Error("error connecting publisher: %v", err)
		os.Exit(1)
	}
	defer publisher.Disconnect()

	service := telemetry.NewService(dev.Meas, publisher, cfg, log)

	// The service goroutine is the sole owner of the device
	done := make(chan error, 1)
	go func() {
		done <- service.Run(ctx)
	}()

	select {
	case <-sigChan:
		log.Info("stop signal received")
		cancel()
		<-done
	case err := <-done:
		if err != nil && err != context.Canceled {
			log.Error("telemetry service failed: %v", err)
			os.Exit(1)
		}
	}
}
