package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ledjassa/marketplace-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type DefaultKafkaPublisher struct {
	writer *kafka.Writer
}

func NewDefaultKafkaPublisher(brokers []string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *DefaultKafkaPublisher) Publish(topic string, events ...domain.Event) error {
	var km []kafka.Message
	for _, e := range events {
		km = append(km, kafka.Message{
			Key:   e.Key,
			Value: e.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return k.writer.WriteMessages(ctx, km...)
}

func (k *DefaultKafkaPublisher) Close() error {
	return k.writer.Close()
}

// MarshalOrderEvent keys the event by seller so a seller's order stream stays
// ordered within a partition.
func MarshalOrderEvent(event OrderEvent) (domain.Event, error) {
	v, err := json.Marshal(event)
	if err != nil {
		return domain.Event{}, err
	}
	return domain.Event{Key: []byte(event.SellerID), Value: v}, nil
}
