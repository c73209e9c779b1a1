package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/showtime-booking/internal/model"
)

// ReceiptWriter stores one receipt per reservation.
type ReceiptWriter interface {
	Insert(ctx context.Context, rc model.Receipt) error
}

// Consumer turns reservation events into receipts.
type Consumer struct {
	URL      string
	Receipts ReceiptWriter
	Logger   *log.Logger
}

func NewConsumer(url string, receipts ReceiptWriter, logger *log.Logger) *Consumer {
	if logger == nil {
		logger = log.New("reservation-consumer")
	}
	return &Consumer{URL: url, Receipts: receipts, Logger: logger}
}

// Run dials the broker and consumes until ctx is cancelled, reconnecting
// with exponential backoff (capped at 30s) whenever the connection drops.
func (c *Consumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(c.URL)
		if err != nil {
			c.Logger.Warnf("dial broker: %v; retrying in %s", err, backoff)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = c.consume(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.Logger.Warnf("consume loop ended: %v; reconnecting", err)
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		c.Logger.Warnf("set qos: %v", err)
	}
	if _, err := ch.QueueDeclare(ReservationQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.Consume(ReservationQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := c.handle(ctx, d.Body); err != nil {
				c.Logger.Errorf("handle message: %v", err)
				// reject without requeue so a poison message cannot spin
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, body []byte) error {
	var ev ReservationSubmittedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if ev.ReservationID == 0 || ev.Username == "" {
		return fmt.Errorf("event %s: missing reservation id or username", ev.EventID)
	}
	rc := model.Receipt{
		ReservationID: ev.ReservationID,
		Username:      ev.Username,
		MovieID:       ev.MovieID,
		ShowtimeID:    ev.ShowtimeID,
		Seats:         ev.Seats,
		SubmittedAt:   ev.SubmittedAt,
	}
	if rc.Seats == nil {
		rc.Seats = []string{}
	}
	if err := c.Receipts.Insert(ctx, rc); err != nil {
		return fmt.Errorf("insert receipt %d: %w", ev.ReservationID, err)
	}
	c.Logger.Infof("receipt recorded reservation_id=%d user=%s seats=%v", ev.ReservationID, ev.Username, ev.Seats)
	return nil
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
