package kafka

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/IBM/sarama"

	"courier-chat/internal/frontend"
)

// RendersMessage is one outbound bus message: everything the front end must
// render for a session in response to one update.
type RendersMessage struct {
	SessionID int64                `json:"session_id"`
	Renders   []frontend.RenderDTO `json:"renders"`
}

// syncSender is the sarama producer subset used here, extracted for tests.
type syncSender interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
	Close() error
}

// Producer publishes render instructions keyed by session id so one session's
// messages stay ordered.
type Producer struct {
	sender syncSender
	topic  string
}

// NewProducer creates a new renders producer. Returns nil when the bus is not
// configured.
func NewProducer(brokers []string, topic string) (*Producer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true

	sender, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &Producer{sender: sender, topic: topic}, nil
}

// Publish sends the renders for one session.
func (p *Producer) Publish(sessionID int64, renders []frontend.Render) error {
	if p == nil {
		return nil
	}
	value, err := json.Marshal(RendersMessage{
		SessionID: sessionID,
		Renders:   frontend.Encode(renders),
	})
	if err != nil {
		return fmt.Errorf("marshal renders: %w", err)
	}

	_, _, err = p.sender.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(sessionID, 10)),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("publish renders for session %d: %w", sessionID, err)
	}
	return nil
}

// Close shuts the underlying producer down.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.sender.Close()
}
