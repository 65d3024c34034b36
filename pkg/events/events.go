// Package events publishes booking lifecycle events to Kafka. Publication is
// best effort: the HTTP request that triggered an event never fails because
// the broker did.
package events

import (
	"context"
	"encoding/json"
	"time"

	"hoteldesk/pkg/model"

	"github.com/google/uuid"
)

const (
	TypeBookingCreated = "booking.created"
	TypeBookingDeleted = "booking.deleted"

	// Header keys shared with downstream consumers.
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
	HeaderTimestamp = "timestamp"

	Source = "hoteldesk"
)

type Event struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	BookingID  string         `json:"bookingId"`
	OccurredAt time.Time      `json:"occurredAt"`
	Booking    *model.Booking `json:"booking,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

func NewBookingCreated(booking *model.Booking) Event {
	return newEvent(TypeBookingCreated, booking)
}

func NewBookingDeleted(booking *model.Booking) Event {
	return newEvent(TypeBookingDeleted, booking)
}

func newEvent(eventType string, booking *model.Booking) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		BookingID:  booking.ID,
		OccurredAt: time.Now().UTC(),
		Booking:    booking,
	}
}

func (e Event) Payload() ([]byte, error) {
	return json.Marshal(e)
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event Event) error { return nil }

func (NoopPublisher) Close() error { return nil }
