package consumer

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// Bindings are the routing keys that change what the venue directory shows.
var Bindings = []string{"venue.*", "show.*"}

const QueueName = "directory.refresh"

type DirectoryRefresher interface {
	RefreshDirectory(ctx context.Context) error
}

// DirectoryConsumer rebuilds the cached venue directory whenever a venue or
// show event arrives, so the next directory request is served warm.
type DirectoryConsumer struct {
	refresher DirectoryRefresher
	timeout   time.Duration
}

func NewDirectoryConsumer(refresher DirectoryRefresher) *DirectoryConsumer {
	return &DirectoryConsumer{refresher: refresher, timeout: 10 * time.Second}
}

// Start handles messages on a background goroutine until msgs is closed or
// ctx is cancelled. The returned channel is closed when it stops.
func (dc *DirectoryConsumer) Start(ctx context.Context, msgs <-chan amqp.Delivery) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("directory consumer stopped")
				return
			case msg, ok := <-msgs:
				if !ok {
					log.Info().Msg("directory consumer channel closed")
					return
				}
				dc.handleMessage(ctx, msg)
			}
		}
	}()
	return done
}

func (dc *DirectoryConsumer) handleMessage(ctx context.Context, msg amqp.Delivery) {
	ctx, cancel := context.WithTimeout(ctx, dc.timeout)
	defer cancel()

	if err := dc.refresher.RefreshDirectory(ctx); err != nil {
		// Requeue once; a redelivered message that fails again is dropped.
		requeue := !msg.Redelivered
		log.Error().Err(err).Str("routing_key", msg.RoutingKey).Bool("requeue", requeue).Msg("directory refresh failed")
		_ = msg.Nack(false, requeue)
		return
	}

	log.Debug().Str("routing_key", msg.RoutingKey).Msg("directory refreshed")
	_ = msg.Ack(false)
}
