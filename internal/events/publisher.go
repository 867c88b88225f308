package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"media-ai-backend/internal/logger"
)

const (
	// publishTimeout bounds how long a request waits on partition metadata.
	publishTimeout = 2 * time.Second
	batchTimeout   = 10 * time.Millisecond
)

// Event types published after successful writes.
const (
	VideoUploaded            = "video.uploaded"
	ImageProcessed           = "image.processed"
	ImageFacesDetected       = "image.faces_detected"
	ImageVisionAnalyzed      = "image.vision_analyzed"
	ImageDeleted             = "image.deleted"
	DocumentUploaded         = "document.uploaded"
	DocumentConverted        = "document.converted"
	DocumentConversionFailed = "document.conversion_failed"
	DocumentDeleted          = "document.deleted"
)

// Envelope is the JSON value of every published message.
type Envelope struct {
	Type      string                 `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Payload   map[string]interface{} `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, eventType, key string, payload map[string]interface{}) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer  messageWriter
	now     func() time.Time
	timeout time.Duration
}

// NewKafkaPublisher returns a publisher whose writes are delivered in the background.
// Delivery failures are logged by the completion callback.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	log := logger.WithComponent("events")
	return newKafkaPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		Async:                  true,
		BatchTimeout:           batchTimeout,
		WriteTimeout:           5 * time.Second,
		ReadTimeout:            5 * time.Second,
		Completion:             logCompletion(log),
	})
}

func newKafkaPublisher(writer messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, now: time.Now, timeout: publishTimeout}
}

func logCompletion(log zerolog.Logger) func([]kafka.Message, error) {
	return func(messages []kafka.Message, err error) {
		if err == nil {
			return
		}
		for _, m := range messages {
			log.Warn().Err(err).Str("topic", m.Topic).Str("key", string(m.Key)).Msg("Failed to deliver event")
		}
	}
}

// Publish writes one envelope keyed by key (usually the entity's public id).
func (p *KafkaPublisher) Publish(ctx context.Context, eventType, key string, payload map[string]interface{}) error {
	value, err := json.Marshal(Envelope{
		Type:      eventType,
		Timestamp: p.now().UTC(),
		Payload:   payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	// Detached so a finished request does not cancel delivery, bounded so a stalled
	// broker cannot hold the request.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: value}); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, eventType, key string, payload map[string]interface{}) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}

// New returns a Kafka publisher, or a no-op one when brokers is empty.
func New(brokers []string, topic string) Publisher {
	if len(brokers) == 0 {
		return NoopPublisher{}
	}
	return NewKafkaPublisher(brokers, topic)
}
