package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/iwtcode/robotConfigurator/internal/config"
	"github.com/iwtcode/robotConfigurator/internal/middleware/logging"
	"github.com/iwtcode/robotConfigurator/models"
	"github.com/stretchr/testify/require"
)

type recordingProducer struct {
	keys   [][]byte
	values [][]byte
	err    error
}

func (r *recordingProducer) Produce(_ context.Context, key, value []byte) error {
	if r.err != nil {
		return r.err
	}
	r.keys = append(r.keys, key)
	r.values = append(r.values, value)
	return nil
}

func (r *recordingProducer) Close() error { return nil }

func TestDisabledWithoutBroker(t *testing.T) {
	p, err := NewKafkaProducer(&config.AppConfig{})
	require.NoError(t, err)
	require.False(t, Enabled(p))
	require.NoError(t, p.Produce(context.Background(), nil, nil))
	require.NoError(t, p.Close())
}

func TestEnabledWithBroker(t *testing.T) {
	cfg := &config.AppConfig{Kafka: config.KafkaConfig{Broker: "localhost:9092", Topic: "robot_calculations"}}
	p, err := NewKafkaProducer(cfg)
	require.NoError(t, err)
	require.True(t, Enabled(p))
	require.NoError(t, p.Close())
}

func TestPublishEncodesResult(t *testing.T) {
	producer := &recordingProducer{}
	pub := NewResultPublisher(producer, logging.Nop())

	err := pub.Publish(context.Background(), ResultMessage{
		RunID:         "run-1",
		Result:        models.CalculationResult{Success: true, TrajectoryLength: 42},
		Configuration: models.DefaultConfiguration(),
	})
	require.NoError(t, err)
	require.Len(t, producer.values, 1)
	require.Equal(t, "run-1", string(producer.keys[0]))

	var decoded ResultMessage
	require.NoError(t, json.Unmarshal(producer.values[0], &decoded))
	require.Equal(t, 42, decoded.Result.TrajectoryLength)
	require.Equal(t, models.RobotCartesian, decoded.Configuration.RobotType)
}

func TestPublishWrapsProducerError(t *testing.T) {
	boom := errors.New("broker down")
	pub := NewResultPublisher(&recordingProducer{err: boom}, logging.Nop())

	err := pub.Publish(context.Background(), ResultMessage{RunID: "run-2"})
	require.ErrorIs(t, err, boom)
}
