package event

import (
	"encoding/json"
	"log"
	"time"

	"github.com/streadway/amqp"
)

// EventPublisher emits assessment lifecycle events on a RabbitMQ topic
// exchange. Routing keys follow the assessment.* hierarchy, e.g.
// assessment.session.completed.
type EventPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewEventPublisher(amqpURL, exchange string) (*EventPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &EventPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

// Publish sends an event with the event type as routing key. Publishing
// is best-effort: a broker failure must never fail the assessment
// operation it annotates.
func (p *EventPublisher) Publish(eventType string, payload interface{}) error {
	event := map[string]interface{}{
		"type":      eventType,
		"payload":   payload,
		"timestamp": time.Now(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.channel.Publish(
		p.exchange,
		eventType,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		log.Printf("failed to publish %s: %v", eventType, err)
	}
	return err
}

func (p *EventPublisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
