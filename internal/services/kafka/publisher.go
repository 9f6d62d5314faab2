package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iwtcode/robotConfigurator/internal/interfaces"
	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"
	"github.com/iwtcode/robotConfigurator/models"
)

// ResultMessage - сообщение о завершенном расчете траектории
type ResultMessage struct {
	RunID         string                    `json:"run_id"`
	CalculatedAt  time.Time                 `json:"calculated_at"`
	Result        models.CalculationResult  `json:"result"`
	Configuration models.RobotConfiguration `json:"configuration"`
}

// ResultPublisher публикует успешные результаты расчета.
type ResultPublisher struct {
	producer interfaces.KafkaService
	logger   *logging.Logger
}

func NewResultPublisher(producer interfaces.KafkaService, logger *logging.Logger) *ResultPublisher {
	return &ResultPublisher{producer: producer, logger: logger.WithPrefix("KAFKA")}
}

// Publish отправляет результат с ключом run id.
func (p *ResultPublisher) Publish(ctx context.Context, msg ResultMessage) error {
	if !Enabled(p.producer) {
		return nil
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать результат расчета: %w", err)
	}
	if err := p.producer.Produce(ctx, []byte(msg.RunID), payload); err != nil {
		p.logger.Warn("Failed to publish calculation result", "run_id", msg.RunID, "error", err)
		return fmt.Errorf("не удалось опубликовать результат расчета: %w", err)
	}
	p.logger.Debug("Calculation result published", "run_id", msg.RunID, "bytes", len(payload))
	return nil
}
