package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hotelbook/config"
	"hotelbook/infras/kafka"
	bookingModel "hotelbook/internal/domains/booking/model"
	channelModel "hotelbook/internal/domains/channel/model"
	channelService "hotelbook/internal/domains/channel/service"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	defaultPushInterval = 15 * time.Minute
	defaultPullInterval = 5 * time.Minute
	defaultGroup        = "hotelbook-worker"
)

// Worker runs the scheduled channel syncs and reacts to booking events.
type Worker struct {
	config       *config.Config
	channel      channelService.Channel
	kafka        kafka.Client
	pushInterval time.Duration
	pullInterval time.Duration
}

func New(cfg *config.Config, channel channelService.Channel, kafka kafka.Client) *Worker {
	return &Worker{
		config:       cfg,
		channel:      channel,
		kafka:        kafka,
		pushInterval: minutes(cfg.Channel.PushIntervalMinutes, defaultPushInterval),
		pullInterval: minutes(cfg.Channel.PullIntervalMinutes, defaultPullInterval),
	}
}

// Run blocks until ctx is cancelled. Each schedule fires once immediately.
func (w *Worker) Run(ctx context.Context) {
	var wg sync.WaitGroup

	group := w.config.Kafka.ConsumerGroup
	if group == "" {
		group = defaultGroup
	}

	topics := []string{w.config.Kafka.Topics.BookingConfirmed, w.config.Kafka.Topics.BookingCancelled}

	wg.Add(2 + len(topics))

	go func() {
		defer wg.Done()
		w.every(ctx, w.pushInterval, channelModel.OperationPushAvailability, channelModel.OperationPushRates)
	}()

	go func() {
		defer wg.Done()
		w.every(ctx, w.pullInterval, channelModel.OperationPullBookings)
	}()

	for _, topic := range topics {
		go func(topic string) {
			defer wg.Done()

			if err := w.kafka.Consume(ctx, group, topic, w.HandleMessage); err != nil {
				log.Error().Err(err).Str("topic", topic).Msg("Booking event consumer stopped")
			}
		}(topic)
	}

	log.Info().
		Dur("push_interval", w.pushInterval).
		Dur("pull_interval", w.pullInterval).
		Strs("topics", topics).
		Msg("Worker started")

	wg.Wait()

	log.Info().Msg("Worker stopped")
}

// HandleMessage turns a booking event into an availability push for its room type and dates.
func (w *Worker) HandleMessage(ctx context.Context, msg kafkaGo.Message) error {
	event, err := kafka.Decode[bookingModel.Event](msg)
	if err != nil {
		return fmt.Errorf("failed to decode booking event: %w", err)
	}

	// Guest emails are rendered elsewhere; the event is only handed off here.
	log.Info().
		Str("booking_id", event.BookingID).
		Str("status", string(event.Status)).
		Str("guest_email", event.GuestEmail).
		Msg("Booking notification handed off")

	if err = w.channel.HandleBookingEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to push availability for booking %s: %w", event.BookingID, err)
	}

	return nil
}

func (w *Worker) every(ctx context.Context, interval time.Duration, operations ...string) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		for _, operation := range operations {
			w.sync(ctx, operation)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (w *Worker) sync(ctx context.Context, operation string) {
	for _, res := range w.channel.SyncAll(ctx, operation) {
		if !res.Success {
			log.Warn().
				Str("provider", res.Provider).
				Str("operation", operation).
				Int("attempts", res.Attempts).
				Strs("errors", res.Errors).
				Msg("Scheduled sync failed")

			continue
		}

		log.Info().
			Str("provider", res.Provider).
			Str("operation", operation).
			Int("items", res.ItemsProcessed).
			Msg("Scheduled sync completed")
	}
}

func minutes(value int, fallback time.Duration) time.Duration {
	if value <= 0 {
		return fallback
	}

	return time.Duration(value) * time.Minute
}
