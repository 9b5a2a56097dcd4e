package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Consumer reads activity events from RabbitMQ and writes one line per
// event to the activity logger.
type Consumer struct {
	url   string
	queue string
	out   *logrus.Logger
}

func NewConsumer(url, queue string, out *logrus.Logger) *Consumer {
	if queue == "" {
		queue = DefaultQueue
	}
	return &Consumer{url: url, queue: queue, out: out}
}

// Run connects, consumes and reconnects with exponential backoff until ctx
// is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		conn, err := amqp.Dial(c.url)
		if err != nil {
			logrus.Warnf("activity-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = c.consumeLoop(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logrus.Warnf("activity-consumer: consume loop ended: %v; reconnecting", err)
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		logrus.Warnf("activity-consumer: set QoS failed: %v", err)
	}
	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.Consume(c.queue, "", false, false, false, false, nil)
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
			if err := c.HandleMessage(d.Body); err != nil {
				logrus.Errorf("activity-consumer: handle message failed: %v", err)
				_ = d.Nack(false, false) // no requeue, avoids a poison loop
				continue
			}
			_ = d.Ack(false)
		}
	}
}

// HandleMessage decodes one delivery body and writes it to the activity log.
func (c *Consumer) HandleMessage(body []byte) error {
	var ev ActivityEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if ev.Type == "" || ev.WorkoutID == 0 {
		return errors.New("event is missing type or workout id")
	}
	c.out.WithFields(logrus.Fields{
		"event_id":   ev.EventID,
		"user_id":    ev.UserID,
		"workout_id": ev.WorkoutID,
	}).Info(FormatActivity(ev))
	return nil
}

// FormatActivity renders an event as a single human-friendly line.
func FormatActivity(ev ActivityEvent) string {
	var b strings.Builder
	switch ev.Type {
	case EventWorkoutCreated:
		fmt.Fprintf(&b, "Workout created | workout=%q", ev.WorkoutName)
	case EventWorkoutExerciseAdded:
		fmt.Fprintf(&b, "Exercise added | workout=%q | exercise=%q | sets=%d | reps=%d", ev.WorkoutName, ev.ExerciseName, ev.Sets, ev.Reps)
		if ev.Weight != nil {
			fmt.Fprintf(&b, " | weight=%gkg", *ev.Weight)
		}
	default:
		fmt.Fprintf(&b, "%s | workout=%q", ev.Type, ev.WorkoutName)
	}
	fmt.Fprintf(&b, " | at=%s", ev.OccurredAt)
	return b.String()
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
