package rabbitmq

import (
	"context"
	"sync"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settlement struct {
	tag     uint64
	ack     bool
	requeue bool
}

type fakeAcknowledger struct {
	mu      sync.Mutex
	settled []settlement
	err     error
}

func (a *fakeAcknowledger) Ack(tag uint64, _ bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.settled = append(a.settled, settlement{tag: tag, ack: true})
	return a.err
}

func (a *fakeAcknowledger) Nack(tag uint64, _ bool, requeue bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.settled = append(a.settled, settlement{tag: tag, requeue: requeue})
	return a.err
}

func (a *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func TestUnitConsumeMessages(t *testing.T) {
	tests := map[string]struct {
		handlerErr  error
		ackErr      error
		wantSettled []settlement
		wantErrs    []error
	}{
		"handled message is acked": {
			wantSettled: []settlement{{tag: 1, ack: true}},
		},
		"failed message is nacked without requeue": {
			handlerErr:  assert.AnError,
			wantSettled: []settlement{{tag: 1}},
			wantErrs:    []error{assert.AnError},
		},
		"ack error is reported": {
			ackErr:      assert.AnError,
			wantSettled: []settlement{{tag: 1, ack: true}},
			wantErrs:    []error{assert.AnError},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ack := &fakeAcknowledger{err: tt.ackErr}
			deliveries := make(chan amqp.Delivery, 1)
			deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: []byte(`{}`)}
			close(deliveries)

			consumingErrors := make(chan error)
			done := make(chan struct{})
			go func() {
				defer close(done)
				defer close(consumingErrors)
				(&RabbitMQ{}).consumeMessages(context.TODO(), "consumer", deliveries, consumingErrors,
					func(context.Context, []byte) error { return tt.handlerErr })
			}()

			var errs []error
			for err := range consumingErrors {
				errs = append(errs, err)
			}
			<-done

			assert.Equal(t, tt.wantSettled, ack.settled)
			require.Len(t, errs, len(tt.wantErrs))
			for ix := range tt.wantErrs {
				assert.ErrorIs(t, errs[ix], tt.wantErrs[ix])
			}
		})
	}
}

func TestUnitConsumeMessagesSettlesAfterCancel(t *testing.T) {
	ack := &fakeAcknowledger{}
	deliveries := make(chan amqp.Delivery, 1)
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 7}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	(&RabbitMQ{}).consumeMessages(ctx, "consumer", deliveries, make(chan error),
		func(context.Context, []byte) error {
			cancel()
			return assert.AnError
		})

	assert.Equal(t, []settlement{{tag: 7}}, ack.settled, "should nack message even if nobody reads errors")
}
