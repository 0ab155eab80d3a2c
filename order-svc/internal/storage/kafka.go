package storage

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"foodhub/order-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

const publishTimeout = 5 * time.Second

// KafkaPublisher writes order events keyed by order id so every event of
// one order lands on the same partition. A circuit breaker stops calling
// the broker after repeated failures.
type KafkaPublisher struct {
	Writer  MessageWriter
	Timeout time.Duration
	breaker *gobreaker.CircuitBreaker[struct{}]
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:    "orders-publisher",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("circuit breaker %s: %s -> %s", name, from, to)
		},
	})
	return &KafkaPublisher{Writer: writer, Timeout: publishTimeout, breaker: breaker}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// Detached from the request; the order is already committed.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.Timeout)
	defer cancel()

	_, err = p.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, p.Writer.WriteMessages(ctx, kafka.Message{
			Key:     []byte(strconv.FormatInt(event.OrderID, 10)),
			Value:   payload,
			Headers: []kafka.Header{{Key: "event_type", Value: []byte(event.Type)}},
		})
	})
	return err
}
