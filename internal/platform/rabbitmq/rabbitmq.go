package rabbitmq

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// HandlerFunc is function which handles messages.
type HandlerFunc func(ctx context.Context, message []byte) error

// RabbitMQ consumes and publishes amqp messages.
type RabbitMQ struct {
	channel   *amqp.Channel
	exchange  string
	isRunning chan struct{}
}

// NewRabbitMQ returns new RabbitMQ.
func NewRabbitMQ(connection *amqp.Connection, exchange string) (*RabbitMQ, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, fmt.Errorf("can't open channel: %w", err)
	}
	mq := RabbitMQ{
		channel:  channel,
		exchange: exchange,
	}

	return &mq, nil
}

// Declare declares durable topic exchange and durable queue bound to it with routing key.
func (mq *RabbitMQ) Declare(queue, routingKey string) error {
	if err := mq.channel.ExchangeDeclare(mq.exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("can't declare exchange %s: %w", mq.exchange, err)
	}

	if _, err := mq.channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("can't declare queue %s: %w", queue, err)
	}

	if err := mq.channel.QueueBind(queue, routingKey, mq.exchange, false, nil); err != nil {
		return fmt.Errorf("can't bind queue %s to %s: %w", queue, routingKey, err)
	}

	return nil
}

// Publish publishes persistent JSON message to routing key.
func (mq *RabbitMQ) Publish(ctx context.Context, routingKey string, message []byte) error {
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Body:         message,
	}

	err := mq.channel.PublishWithContext(
		ctx,
		mq.exchange,
		routingKey,
		false,
		false,
		msg,
	)
	if err != nil {
		return fmt.Errorf("can't publish message %s: %w", msg.MessageId, err)
	}

	return nil
}

// Consume consumes messages from queue and passes deliveries to provided handler function.
// It returns channel with errors from handler function and consuming process, closed when consuming stops.
// Function works asynchronously, it consumes messages in background until context is closed.
// Messages are acked when handler succeeds and nacked without requeue when it fails.
func (mq *RabbitMQ) Consume(ctx context.Context, queue string, handler HandlerFunc) (<-chan error, error) {
	consumerID, err := uuid.NewUUID()
	if err != nil {
		return nil, fmt.Errorf("can't create consumer ID: %w", err)
	}

	// one seed command at a time per consumer.
	if err := mq.channel.Qos(1, 0, false); err != nil {
		return nil, fmt.Errorf("can't set prefetch count: %w", err)
	}

	deliveries, err := mq.channel.Consume(
		queue,
		consumerID.String(),
		false, // auto acknowledge
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("can't start consuming: %w", err)
	}

	consumingErrors := make(chan error)
	mq.isRunning = make(chan struct{})
	go func() {
		defer close(mq.isRunning)
		defer close(consumingErrors)
		mq.consumeMessages(ctx, consumerID.String(), deliveries, consumingErrors, handler)
	}()

	return consumingErrors, nil
}

func (mq *RabbitMQ) consumeMessages(
	ctx context.Context,
	consumerID string,
	deliveries <-chan amqp.Delivery,
	consumingErrors chan error,
	handler HandlerFunc,
) {
	for {
		select {
		case <-ctx.Done():
			if err := mq.channel.Cancel(consumerID, false); err != nil {
				_ = pushError(context.WithoutCancel(ctx), fmt.Errorf("can't cancel consumer: %w", err), consumingErrors)
			}
			return
		case delivery, ok := <-deliveries:
			if !ok {
				return
			}

			handlerErr := handler(ctx, delivery.Body)
			settleErr := settle(&delivery, handlerErr)

			for _, err := range []error{handlerErr, settleErr} {
				if err == nil {
					continue
				}
				if pushErr := pushError(ctx, err, consumingErrors); pushErr != nil {
					return
				}
			}
		}
	}
}

// settle acks delivery handled without error and nacks it without requeue otherwise.
func settle(delivery *amqp.Delivery, handlerErr error) error {
	if handlerErr == nil {
		if err := delivery.Ack(false); err != nil {
			return fmt.Errorf("can't ack message %s: %w", delivery.MessageId, err)
		}
		return nil
	}

	if err := delivery.Nack(false, false); err != nil {
		return fmt.Errorf("can't nack message %s: %w", delivery.MessageId, err)
	}

	return nil
}

// Done returns channel which will be closed when consuming will be finished.
func (mq *RabbitMQ) Done() chan struct{} {
	return mq.isRunning
}

func pushError(ctx context.Context, err error, errChan chan error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case errChan <- err:
	}
	return nil
}
