package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/sommerhus-booking/internal/domain"
	"github.com/m04kA/sommerhus-booking/internal/integrations/notifier"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func testEvent() notifier.Event {
	b := &domain.Booking{
		ID:        "booking-1",
		Name:      "Anna",
		Guests:    2,
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
	}
	return notifier.NewEvent(notifier.RecipientOwner, notifier.OutcomeCreatedAutoConfirmed, b, time.Now())
}

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestBuildMessage(t *testing.T) {
	event := testEvent()

	msg, err := BuildMessage(event)
	require.NoError(t, err)

	assert.Equal(t, "booking-1", string(msg.Key))
	assert.Equal(t, event.ID, header(msg, HeaderEventID))
	assert.Equal(t, "created-auto-confirmed", header(msg, HeaderEventType))
	assert.Equal(t, "owner", header(msg, HeaderRecipient))

	var decoded notifier.Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, 3, decoded.Booking.StayLength)
}

func TestPublisher_Notify(t *testing.T) {
	w := &fakeWriter{}
	p := NewPublisherWithWriter(w, "bookings")

	require.True(t, p.Available())
	require.NoError(t, p.Notify(context.Background(), testEvent()))
	assert.Len(t, w.msgs, 1)
}

func TestPublisher_NotifyError(t *testing.T) {
	p := NewPublisherWithWriter(&fakeWriter{err: errors.New("broker down")}, "bookings")

	err := p.Notify(context.Background(), testEvent())
	assert.ErrorIs(t, err, ErrPublish)
}

func TestPublisher_Close(t *testing.T) {
	w := &fakeWriter{}
	p := NewPublisherWithWriter(w, "bookings")

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	assert.True(t, w.closed)
	assert.False(t, p.Available())
	assert.ErrorIs(t, p.Notify(context.Background(), testEvent()), ErrPublisherClosed)
}

func TestNewPublisher_Validation(t *testing.T) {
	_, err := NewPublisher(Config{Topic: "bookings"})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewPublisher(Config{Brokers: []string{"localhost:9092"}})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
