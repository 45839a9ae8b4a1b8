package commander

import "context"

// DefaultRoutingKey is routing key seeder workers are bound to by default.
const DefaultRoutingKey = "commerce-seeder.seed"

//go:generate mockery --name RabbitMQPublisher --filename rabbitmqpublisher.go

// RabbitMQPublisher is RabbitMQ messages publisher.
type RabbitMQPublisher interface {
	Publish(context.Context, string, []byte) error
}

// RabbitMQSender sends seed commands as RMQ messages.
type RabbitMQSender struct {
	publisher  RabbitMQPublisher
	routingKey string
}

// NewRabbitMQSender returns new RabbitMQSender publishing to routing key.
// Empty routing key means DefaultRoutingKey.
func NewRabbitMQSender(publisher RabbitMQPublisher, routingKey string) RabbitMQSender {
	if routingKey == "" {
		routingKey = DefaultRoutingKey
	}

	return RabbitMQSender{
		publisher:  publisher,
		routingKey: routingKey,
	}
}

// Send publishes message to sender's routing key.
func (s RabbitMQSender) Send(ctx context.Context, msg []byte) error {
	return s.publisher.Publish(ctx, s.routingKey, msg)
}
