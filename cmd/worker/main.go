package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/unclebandit/lifecare-cockpit/internal/config"
	"github.com/unclebandit/lifecare-cockpit/internal/logging"
	"github.com/unclebandit/lifecare-cockpit/internal/queue"
)

// The worker tails the workflow event queue and logs an activity line per
// event. It is the out-of-process counterpart of the server's activity feed.
func main() {
	cfg, cfgErr := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if cfgErr != nil {
		logger.Warn("some settings were invalid, using defaults", zap.Error(cfgErr))
	}
	if cfg.AMQPURL == "" {
		logger.Fatal("AMQP_URL is required for the worker")
	}

	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		logger.Fatal("failed to connect to RabbitMQ", zap.Error(err))
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Fatal("failed to open a channel", zap.Error(err))
	}
	defer ch.Close()

	q, err := queue.DeclareQueue(ch, cfg.AMQPQueue)
	if err != nil {
		logger.Fatal("failed to declare queue", zap.Error(err))
	}

	msgs, err := ch.Consume(
		q.Name,
		"",
		false, // autoAck = false for reliability
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Fatal("failed to register consumer", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	feed := queue.NewActivityFeed(cfg.ActivityFeedSize)
	logger.Info("worker running, waiting for workflow events", zap.String("queue", q.Name))

	for {
		select {
		case <-ctx.Done():
			logger.Info("worker stopping", zap.Int("events_seen", len(feed.Recent())))
			return
		case d, ok := <-msgs:
			if !ok {
				logger.Warn("delivery channel closed")
				return
			}
			handleDelivery(d, feed, logger)
		}
	}
}

func handleDelivery(d amqp.Delivery, feed *queue.ActivityFeed, logger *zap.Logger) {
	event, err := decodeEvent(d.Body)
	if err != nil {
		logger.Warn("invalid workflow event", zap.Error(err))
		d.Ack(false) // a malformed body will never decode
		return
	}

	feed.Record(event)
	logger.Info("workflow event",
		zap.String("kind", string(event.Kind)),
		zap.String("entity_id", event.EntityID),
		zap.String("detail", event.Detail),
		zap.Time("occurred_at", event.OccurredAt))
	d.Ack(false)
}

func decodeEvent(body []byte) (queue.WorkflowEvent, error) {
	var event queue.WorkflowEvent
	err := json.Unmarshal(body, &event)
	return event, err
}
