package interfaces

import (
	"context"
)

// KafkaService доставляет результаты расчетов в брокер. Ключ сообщения -
// run id расчета, значение - JSON результата вместе со снимком конфигурации.
type KafkaService interface {
	Produce(ctx context.Context, key, value []byte) error
	Close() error
}
