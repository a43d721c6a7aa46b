// Package telemetry polls measurements from an electronic load and publishes
// them over MQTT. It is an optional layer on top of the driver; the service
// goroutine is the sole owner of the device for its lifetime.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/logger"
)

// MeasurementSource provides the readings the service polls. *sdl.Measure
// satisfies it.
type MeasurementSource interface {
	Voltage(ctx context.Context) (float64, error)
	Current(ctx context.Context) (float64, error)
	Power(ctx context.Context) (float64, error)
}

// ReadingPublisher is the publishing side of the service, implemented by
// Publisher and mocked in tests.
type ReadingPublisher interface {
	PublishReading(ctx context.Context, source string, value float64) error
	PublishDiagnostic(ctx context.Context, message string) error
}

// summaryInterval is how often the service logs its counters
const summaryInterval = 30 * time.Second

// Service runs the poll/publish loop
type Service struct {
	src MeasurementSource
	pub ReadingPublisher
	cfg *Config
	log *logger.Logger

	successCount uint64
	errorCount   uint64
}

// NewService wires a measurement source to a publisher
func NewService(src MeasurementSource, pub ReadingPublisher, cfg *Config, log *logger.Logger) *Service {
	return &Service{src: src, pub: pub, cfg: cfg, log: log}
}

// Run polls all configured sources on the configured interval until the
// context is cancelled
func (s *Service) Run(ctx context.Context) error {
	interval := time.Duration(s.cfg.Publish.PollInterval) * time.Second
	s.log.Info("telemetry service started, polling every %s", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	summary := time.NewTicker(summaryInterval)
	defer summary.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("telemetry service stopped: %d published, %d errors",
				s.successCount, s.errorCount)
			return ctx.Err()
		case <-summary.C:
			s.log.Info("telemetry summary: %d published, %d errors",
				s.successCount, s.errorCount)
		case <-ticker.C:
			s.pollOnce(ctx)
		}
	}
}

// pollOnce reads and publishes every configured source. Sources are polled
// in order; a failing source is reported and the rest still run.
func (s *Service) pollOnce(ctx context.Context) {
	for _, source := range s.cfg.Publish.Sources {
		value, err := s.read(ctx, source)
		if err != nil {
			s.errorCount++
			s.log.Warn("reading %s failed: %v", source, err)
			if err := s.pub.PublishDiagnostic(ctx, fmt.Sprintf("reading %s failed: %v", source, err)); err != nil {
				s.log.Error("publishing diagnostic failed: %v", err)
			}
			continue
		}
		if err := s.pub.PublishReading(ctx, source, value); err != nil {
			s.errorCount++
			s.log.Error("publishing %s failed: %v", source, err)
			continue
		}
		s.successCount++
	}
}

func (s *Service) read(ctx context.Context, source string) (float64, error) {
	switch source {
	case "voltage":
		return s.src.Voltage(ctx)
	case "current":
		return s.src.Current(ctx)
	case "power":
		return s.src.Power(ctx)
	default:
		return 0, fmt.Errorf("unknown measurement source %q", source)
	}
}

// Counts returns the number of successful publishes and errors so far
func (s *Service) Counts() (published, errors uint64) {
	return s.successCount, s.errorCount
}
