package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"seminary/pkg/config"
	"seminary/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	LectureExchange   = "lectures"
	LectureQueueName  = "lecture_events"
	lectureRoutingKey = "lecture.#"
)

type EventType string

const (
	LectureCreated EventType = "lecture.created"
	LectureUpdated EventType = "lecture.updated"
	LectureDeleted EventType = "lecture.deleted"
)

// LectureEvent is published after a lecture mutation has been committed.
type LectureEvent struct {
	Type       EventType `json:"type"`
	LectureID  string    `json:"lectureId"`
	Category   string    `json:"category,omitempty"`
	Series     string    `json:"series,omitempty"`
	ActorID    string    `json:"actorId"`
	OccurredAt time.Time `json:"occurredAt"`
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	if cfg.RabbitMQHost == "" {
		return nil, fmt.Errorf("RABBITMQ_HOST is not set")
	}

	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		LectureExchange, // name
		"topic",         // type
		true,            // durable
		false,           // auto-deleted
		false,           // internal
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		LectureQueueName, // name
		true,             // durable
		false,            // delete when unused
		false,            // exclusive
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(
		LectureQueueName,  // queue name
		lectureRoutingKey, // routing key
		LectureExchange,   // exchange
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// PublishLectureEvent routes the event by its type (e.g. lecture.created).
func (c *Client) PublishLectureEvent(ctx context.Context, event LectureEvent) error {
	body, err := Encode(event)
	if err != nil {
		return err
	}

	err = c.channel.PublishWithContext(
		ctx,
		LectureExchange,    // exchange
		string(event.Type), // routing key
		false,              // mandatory
		false,              // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish %s for lecture %s: %v", event.Type, event.LectureID, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Debug("[RABBITMQ] Published %s for lecture %s", event.Type, event.LectureID)
	return nil
}

func Encode(event LectureEvent) ([]byte, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return body, nil
}
