package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// DefaultQueue is the durable queue activity events are routed to.
const DefaultQueue = "workout.activity"

// Publisher sends ActivityEvents to RabbitMQ. Each publish dials its own
// connection; event volume is one message per workout write.
type Publisher struct {
	url   string
	queue string
}

func NewPublisher(url, queue string) *Publisher {
	if queue == "" {
		queue = DefaultQueue
	}
	return &Publisher{url: url, queue: queue}
}

// Publish declares the queue (idempotent) and sends ev as a persistent JSON
// message. Errors are logged and returned so callers may ignore them.
func (p *Publisher) Publish(ctx context.Context, ev ActivityEvent) error {
	log := logrus.WithFields(logrus.Fields{"event_id": ev.EventID, "type": ev.Type})

	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Errorf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Errorf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		log.Errorf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		log.Errorf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.EventID,
		Type:         ev.Type,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		log.Errorf("rabbitmq: publish failed: %v", err)
		return err
	}
	log.Debug("rabbitmq: event published")
	return nil
}

// NopPublisher drops every event. It is used when events are disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ActivityEvent) error { return nil }
