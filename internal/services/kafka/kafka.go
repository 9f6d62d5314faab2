package kafka

import (
	"context"
	"time"

	"github.com/iwtcode/robotConfigurator/internal/config"
	"github.com/iwtcode/robotConfigurator/internal/interfaces"

	"github.com/segmentio/kafka-go"
)

type KafkaProducer struct {
	writer *kafka.Writer
}

// NewKafkaProducer создает продюсера Kafka. Без адреса брокера публикация отключена.
func NewKafkaProducer(cfg *config.AppConfig) (interfaces.KafkaService, error) {
	if cfg.Kafka.Broker == "" {
		return disabledProducer{}, nil
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Kafka.Broker),
		Topic:        cfg.Kafka.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
	}
	return &KafkaProducer{writer: writer}, nil
}

// Produce отправляет сообщение в Kafka
func (p *KafkaProducer) Produce(ctx context.Context, key, value []byte) error {
	return p.writer.WriteMessages(ctx,
		kafka.Message{
			Key:   key,
			Value: value,
		},
	)
}

// Close закрывает соединение с Kafka
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

type disabledProducer struct{}

func (disabledProducer) Produce(context.Context, []byte, []byte) error { return nil }
func (disabledProducer) Close() error                                  { return nil }

// Enabled сообщает, ведется ли публикация на самом деле.
func Enabled(p interfaces.KafkaService) bool {
	_, disabled := p.(disabledProducer)
	return !disabled
}
