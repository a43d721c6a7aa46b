package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/logger"
)

// Reading is the JSON payload published for one measurement
type Reading struct {
	Source    string    `json:"source"`
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher publishes measurement readings and service status over MQTT
type Publisher struct {
	client paho.Client
	cfg    *Config
	log    *logger.Logger
}

// NewPublisher creates an MQTT publisher from the telemetry configuration
func NewPublisher(cfg *Config, log *logger.Logger) *Publisher {
	opts := paho.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", cfg.MQTT.Broker, cfg.MQTT.Port))
	opts.SetClientID(cfg.MQTT.ClientID)
	opts.SetUsername(cfg.MQTT.Username)
	opts.SetPassword(cfg.MQTT.Password)
	opts.SetAutoReconnect(true)

	keepAlive := cfg.MQTT.KeepAlive
	if keepAlive == 0 {
		keepAlive = 60
	}
	opts.SetKeepAlive(time.Duration(keepAlive) * time.Second)
	opts.SetPingTimeout(10 * time.Second)

	statusTopic := cfg.Publish.TopicPrefix + "/status"
	opts.SetWill(statusTopic, "offline", 1, true)

	opts.SetOnConnectHandler(func(client paho.Client) {
		log.Info("telemetry publisher connected to MQTT broker")
		if token := client.Publish(statusTopic, 1, true, "online"); token.Wait() && token.Error() != nil {
			log.Warn("error publishing online status on connect: %v", token.Error())
		}
	})
	opts.SetConnectionLostHandler(func(client paho.Client, err error) {
		log.Error("telemetry publisher disconnected: %v", err)
	})

	return &Publisher{
		client: paho.NewClient(opts),
		cfg:    cfg,
		log:    log,
	}
}

// Connect connects the publisher to the broker with infinite retry
func (p *Publisher) Connect(ctx context.Context) error {
	retryDelay := time.Duration(p.cfg.MQTT.RetryDelay) * time.Millisecond
	if retryDelay == 0 {
		retryDelay = 5 * time.Second
	}

	attempt := 1
	for {
		p.log.Debug("attempting to connect to MQTT broker (attempt %d)", attempt)

		if token := p.client.Connect(); token.Wait() && token.Error() != nil {
			p.log.Error("MQTT connection failed (attempt %d): %v", attempt, token.Error())

			select {
			case <-ctx.Done():
				return fmt.Errorf("MQTT connection cancelled: %w", ctx.Err())
			case <-time.After(retryDelay):
				attempt++
				continue
			}
		}

		p.log.Info("connected to MQTT broker after %d attempt(s)", attempt)
		return nil
	}
}

// Disconnect publishes the offline status and disconnects
func (p *Publisher) Disconnect() {
	if p.client.IsConnected() {
		topic := p.cfg.Publish.TopicPrefix + "/status"
		if token := p.client.Publish(topic, 1, true, "offline"); token.Wait() && token.Error() != nil {
			p.log.Warn("error publishing offline status: %v", token.Error())
		}
		p.client.Disconnect(250)
	}
}

// PublishReading publishes one measurement under <prefix>/<source>
func (p *Publisher) PublishReading(ctx context.Context, source string, value float64) error {
	reading := Reading{
		Source:    source,
		Value:     value,
		Unit:      sourceUnit(source),
		Timestamp: time.Now().UTC(),
	}
	payload, err := json.Marshal(reading)
	if err != nil {
		return fmt.Errorf("marshal reading for %s: %w", source, err)
	}

	topic := p.cfg.Publish.TopicPrefix + "/" + source
	p.log.Debug("publishing %s = %.4f %s to %s", source, value, reading.Unit, topic)

	token := p.client.Publish(topic, 0, false, payload)
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("publish to %s timed out", topic)
	}
	if token.Error() != nil {
		return fmt.Errorf("publish to %s: %w", topic, token.Error())
	}
	return nil
}

// PublishDiagnostic publishes an error message under <prefix>/diagnostic
func (p *Publisher) PublishDiagnostic(ctx context.Context, message string) error {
	topic := p.cfg.Publish.TopicPrefix + "/diagnostic"
	token := p.client.Publish(topic, 1, false, message)
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("publish to %s timed out", topic)
	}
	if token.Error() != nil {
		return fmt.Errorf("publish to %s: %w", topic, token.Error())
	}
	return nil
}

// sourceUnit maps a measurement source to its SI unit symbol
func sourceUnit(source string) string {
	switch source {
	case "voltage":
		return "V"
	case "current":
		return "A"
	case "power":
		return "W"
	default:
		return ""
	}
}
