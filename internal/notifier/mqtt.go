package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/diegoclair/league-timekeeper-bot/internal/domain"
	paho "github.com/eclipse/paho.mqtt.golang"
)

const (
	eventReminder = "REMINDER"
	eventAdvanced = "ADVANCED"
)

// mqttClient is the part of paho.Client used to publish
type mqttClient interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
	Disconnect(quiesce uint)
}

// MQTT publishes timer events as JSON under <topic>/<channelID>
type MQTT struct {
	client mqttClient
	topic  string
}

// Event is the MQTT payload for a reminder or an advancement
type Event struct {
	Timestamp        string `json:"timestamp"`
	Event            string `json:"event"`
	ChannelID        string `json:"channel_id"`
	Threshold        string `json:"threshold,omitempty"`
	RemainingSeconds int64  `json:"remaining_seconds,omitempty"`
	Season           *int   `json:"season,omitempty"`
	Week             *int   `json:"week,omitempty"`
}

// NewMQTT connects to broker and returns a publisher for topic
func NewMQTT(broker, clientID, topic string) (*MQTT, error) {
	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)

	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("connection timeout")
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}

	return newMQTT(client, topic), nil
}

func newMQTT(client mqttClient, topic string) *MQTT {
	return &MQTT{client: client, topic: topic}
}

func (m *MQTT) SendReminder(ctx context.Context, channelID string, threshold domain.Threshold, remaining time.Duration) error {
	return m.publish(ctx, channelID, Event{
		Event:            eventReminder,
		ChannelID:        channelID,
		Threshold:        threshold.Label,
		RemainingSeconds: int64(remaining / time.Second),
	})
}

func (m *MQTT) SendAdvancement(ctx context.Context, channelID string, season, week int) error {
	return m.publish(ctx, channelID, Event{
		Event:     eventAdvanced,
		ChannelID: channelID,
		Season:    &season,
		Week:      &week,
	})
}

func (m *MQTT) publish(ctx context.Context, channelID string, event Event) error {
	event.Timestamp = time.Now().UTC().Format(time.RFC3339)

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("format payload: %w", err)
	}

	// QoS 1 (at-least-once), not retained
	token := m.client.Publish(m.topic+"/"+channelID, 1, false, payload)
	select {
	case <-token.Done():
	case <-ctx.Done():
		return fmt.Errorf("publish: %w", ctx.Err())
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	return nil
}

// Close disconnects from the broker
func (m *MQTT) Close() {
	m.client.Disconnect(1000) // 1 second timeout
}
