package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/hengtai25/portfolio-api/internal/config"
)

const (
	TopicPortfolioEvents = "portfolio.events"
	TopicThemeEvents     = "theme.events"
)

type envelope struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

type KafkaPublisher struct {
	portfolioWriter *kafka.Writer
	themeWriter     *kafka.Writer
}

func NewKafkaPublisher(cfg config.Config) (*KafkaPublisher, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	portfolioWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPortfolioEvents,
		Balancer: &kafka.LeastBytes{},
	}

	themeWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicThemeEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaPublisher{
		portfolioWriter: portfolioWriter,
		themeWriter:     themeWriter,
	}, nil
}

func (p *KafkaPublisher) PublishPortfolioEvent(ctx context.Context, eventType string, payload any) error {
	return publish(ctx, p.portfolioWriter, eventType, payload)
}

func (p *KafkaPublisher) PublishThemeEvent(ctx context.Context, eventType string, payload any) error {
	return publish(ctx, p.themeWriter, eventType, payload)
}

func publish(ctx context.Context, writer *kafka.Writer, eventType string, payload any) error {
	value, err := json.Marshal(envelope{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
	if err != nil {
		return fmt.Errorf("failed to serialize event %s: %w", eventType, err)
	}
	return writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(eventType),
		Value: value,
	})
}

func (p *KafkaPublisher) Close() {
	if p.portfolioWriter != nil {
		p.portfolioWriter.Close()
	}
	if p.themeWriter != nil {
		p.themeWriter.Close()
	}
}
