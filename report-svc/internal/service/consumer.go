package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"foodhub/report-svc/internal/domain"

	"github.com/shopspring/decimal"
)

const dayLayout = "2006-01-02"

// ErrMalformedEvent marks events that can never be recorded. They are
// committed and skipped instead of retried.
var ErrMalformedEvent = errors.New("malformed order event")

type Consumer struct {
	Reader     MessageReader
	Store      StoreInterface
	RetryDelay time.Duration
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader:     reader,
		Store:      store,
		RetryDelay: time.Second,
	}
}

// Start reads the orders topic until ctx is cancelled. An offset is
// committed only after its event is recorded, so a Redis outage stalls the
// partition instead of losing events.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Report Service consumer...")
	for {
		message, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Report Service consumer stopped")
				return
			}
			log.Printf("Error fetching message: %v", err)
			if !c.wait(ctx) {
				return
			}
			continue
		}

		if err := c.handle(ctx, message.Value); err != nil {
			log.Println("Report Service consumer stopped")
			return
		}

		if err := c.Reader.CommitMessages(ctx, message); err != nil {
			log.Printf("Error committing offset %d: %v", message.Offset, err)
		}
	}
}

// handle retries store failures until they succeed; it only returns an
// error when ctx is cancelled.
func (c *Consumer) handle(ctx context.Context, payload []byte) error {
	var event domain.OrderEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		log.Printf("Error unmarshaling message: %v", err)
		return nil
	}

	for {
		err := c.ProcessEvent(ctx, event)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrMalformedEvent) {
			log.Printf("Skipping %s for order %d: %v", event.Type, event.OrderID, err)
			return nil
		}
		log.Printf("Error processing %s for order %d: %v", event.Type, event.OrderID, err)
		if !c.wait(ctx) {
			return ctx.Err()
		}
	}
}

func (c *Consumer) wait(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(c.RetryDelay):
		return true
	}
}

// ProcessEvent folds one order event into the daily counters. Each order
// counts once per kind of event even if the broker redelivers it.
func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) error {
	timestamp := event.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	day := timestamp.UTC().Format(dayLayout)

	switch event.Type {
	case domain.EventOrderPlaced:
		subtotal, err := decimal.NewFromString(event.Subtotal)
		if err != nil {
			return fmt.Errorf("%w: subtotal %q: %w", ErrMalformedEvent, event.Subtotal, err)
		}
		cents := subtotal.Shift(2).Round(0).IntPart()
		return c.once(ctx, fmt.Sprintf("placed:%d", event.OrderID), func() error {
			return c.Store.RecordPlaced(ctx, day, event.RestaurantID, cents)
		})
	case domain.EventOrderStatusChanged:
		if event.Status != domain.StatusDelivered {
			return nil
		}
		return c.once(ctx, fmt.Sprintf("delivered:%d", event.OrderID), func() error {
			return c.Store.RecordDelivered(ctx, day, event.RestaurantID)
		})
	default:
		return nil
	}
}

func (c *Consumer) once(ctx context.Context, eventKey string, record func() error) error {
	fresh, err := c.Store.MarkProcessed(ctx, eventKey)
	if err != nil {
		return err
	}
	if !fresh {
		return nil
	}

	if err := record(); err != nil {
		if forgetErr := c.Store.Forget(ctx, eventKey); forgetErr != nil {
			log.Printf("Error clearing marker %s: %v", eventKey, forgetErr)
		}
		return err
	}
	return nil
}
