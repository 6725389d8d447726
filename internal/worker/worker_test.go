package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelbook/config"
	kafkaMocks "hotelbook/infras/kafka/mocks"
	bookingModel "hotelbook/internal/domains/booking/model"
	channelMocks "hotelbook/internal/domains/channel/mocks"
	channelModel "hotelbook/internal/domains/channel/model"
	"hotelbook/internal/domains/channel/model/dto"
	"hotelbook/internal/worker"

	kafkaGo "github.com/segmentio/kafka-go"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.ConsumerGroup = "worker-test"
	cfg.Kafka.Topics.BookingConfirmed = "booking.confirmed"
	cfg.Kafka.Topics.BookingCancelled = "booking.cancelled"

	return cfg
}

func TestWorker_RunSyncsOnceAndConsumesBothTopics(t *testing.T) {
	ctrl := gomock.NewController(t)
	channel := channelMocks.NewMockChannel(ctrl)
	client := kafkaMocks.NewMockClient(ctrl)

	failed := []dto.SyncResponse{{Provider: "makemytrip", Success: false, Attempts: 4, Errors: []string{"timeout"}}}
	ok := []dto.SyncResponse{{Provider: "makemytrip", Success: true, Attempts: 1, ItemsProcessed: 3}}

	channel.EXPECT().SyncAll(gomock.Any(), channelModel.OperationPushAvailability).Return(ok)
	channel.EXPECT().SyncAll(gomock.Any(), channelModel.OperationPushRates).Return(failed)
	channel.EXPECT().SyncAll(gomock.Any(), channelModel.OperationPullBookings).Return(ok)

	client.EXPECT().Consume(gomock.Any(), "worker-test", "booking.confirmed", gomock.Any()).Return(nil)
	client.EXPECT().Consume(gomock.Any(), "worker-test", "booking.cancelled", gomock.Any()).Return(errors.New("broker down"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	worker.New(newConfig(), channel, client).Run(ctx)
}

func TestWorker_RunUsesDefaultConsumerGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	channel := channelMocks.NewMockChannel(ctrl)
	client := kafkaMocks.NewMockClient(ctrl)

	channel.EXPECT().SyncAll(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	client.EXPECT().Consume(gomock.Any(), "hotelbook-worker", gomock.Any(), gomock.Any()).Return(nil).Times(2)

	cfg := newConfig()
	cfg.Kafka.ConsumerGroup = ""

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	worker.New(cfg, channel, client).Run(ctx)
}

func TestWorker_HandleMessage(t *testing.T) {
	event := bookingModel.Event{
		BookingID:  "booking-1",
		RoomTypeID: "room-type-1",
		Status:     bookingModel.StatusPaid,
		Source:     bookingModel.SourceDirect,
		CheckIn:    "2026-11-01",
		CheckOut:   "2026-11-03",
		GuestEmail: "guest@example.com",
	}

	value, err := json.Marshal(event)
	require.NoError(t, err)

	tests := []struct {
		name      string
		value     []byte
		pushErr   error
		expectErr bool
		expectRun bool
	}{
		{name: "pushes availability", value: value, expectRun: true},
		{name: "push failure is returned", value: value, pushErr: errors.New("provider down"), expectErr: true, expectRun: true},
		{name: "undecodable message", value: []byte("{"), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			channel := channelMocks.NewMockChannel(ctrl)

			if tt.expectRun {
				channel.EXPECT().HandleBookingEvent(gomock.Any(), event).Return(tt.pushErr)
			}

			w := worker.New(newConfig(), channel, kafkaMocks.NewMockClient(ctrl))

			err := w.HandleMessage(context.Background(), kafkaGo.Message{Topic: "booking.confirmed", Value: tt.value})
			if tt.expectErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}
