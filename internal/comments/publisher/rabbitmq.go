package publisher

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"

	"github.com/devfolio/portfolio-backend/internal/comments/domain"
)

const exchangeName = "comment_notifications"

// channel is the subset of *amqp.Channel the publisher needs,
// mockable in tests.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

var _ channel = (*amqp.Channel)(nil)

// RabbitMQPublisher fans comment notifications out through a durable
// fanout exchange. It holds one connection and one channel for its
// lifetime; Close releases both.
type RabbitMQPublisher struct {
	conn *amqp.Connection
	ch   channel
}

func NewRabbitMQPublisher(url string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	p := &RabbitMQPublisher{conn: conn, ch: ch}
	if err := p.declareExchange(); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return p, nil
}

// newWithChannel wires the publisher to an existing channel; used by
// tests.
func newWithChannel(ch channel) (*RabbitMQPublisher, error) {
	p := &RabbitMQPublisher{ch: ch}
	if err := p.declareExchange(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *RabbitMQPublisher) declareExchange() error {
	// durable fanout; routing key is ignored by subscribers
	if err := p.ch.ExchangeDeclare(exchangeName, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", exchangeName, err)
	}
	return nil
}

// PublishComment sends the notification as JSON. It blocks until the
// broker accepts the write, not until any subscriber consumes it.
func (p *RabbitMQPublisher) PublishComment(n domain.CommentNotification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	if err := p.ch.Publish(exchangeName, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	}); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		return fmt.Errorf("close channel: %w", err)
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("close connection: %w", err)
		}
	}
	return nil
}
