package queue

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// AMQPQueue publishes payloads as JSON to a durable RabbitMQ queue, named
// after the topic unless Route says otherwise. Every publish is also handed
// to local subscribers, so an in-process activity feed keeps working next
// to external consumers.
type AMQPQueue struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	declared map[string]bool
	routes   map[string]string
	local    *InMemoryQueue
	logger   *zap.Logger
}

// DialAMQP connects to the broker at url.
func DialAMQP(url string, logger *zap.Logger) (*AMQPQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to queue: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open queue channel: %w", err)
	}

	return &AMQPQueue{
		conn:     conn,
		ch:       ch,
		declared: make(map[string]bool),
		routes:   make(map[string]string),
		local:    NewInMemoryQueue(logger),
		logger:   logger,
	}, nil
}

// DeclareQueue declares the durable queue for topic.
func DeclareQueue(ch *amqp.Channel, topic string) (amqp.Queue, error) {
	return ch.QueueDeclare(
		topic,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
}

// Route sends topic to the broker queue name instead.
func (q *AMQPQueue) Route(topic, name string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.routes[topic] = name
}

func (q *AMQPQueue) Publish(topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	q.mu.Lock()
	name := topic
	if routed, ok := q.routes[topic]; ok {
		name = routed
	}
	if !q.declared[name] {
		if _, err := DeclareQueue(q.ch, name); err != nil {
			q.mu.Unlock()
			return fmt.Errorf("declare queue %s: %w", name, err)
		}
		q.declared[name] = true
	}
	err = q.ch.Publish(
		"",
		name,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	q.mu.Unlock()
	if err != nil {
		return fmt.Errorf("publish to %s: %w", name, err)
	}

	if err := q.local.Publish(topic, payload); err != nil {
		q.logger.Debug("no local subscribers", zap.String("topic", topic))
	}
	return nil
}

// Subscribe registers a local handler. Remote consumers read the broker
// queue directly (see cmd/worker).
func (q *AMQPQueue) Subscribe(topic string, handler func(payload any) error) error {
	return q.local.Subscribe(topic, handler)
}

func (q *AMQPQueue) Close() error {
	q.local.Wait()
	if err := q.ch.Close(); err != nil {
		q.conn.Close()
		return err
	}
	return q.conn.Close()
}
