package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"hoteldesk/pkg/model"
)

func testBooking() *model.Booking {
	return &model.Booking{
		ID:         "65b1f0a0a0a0a0a0a0a0a0a0",
		Name:       "A",
		Email:      "a@x.com",
		Phone:      "123",
		Gender:     "F",
		CheckIn:    model.NewTimestamp(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)),
		CheckOut:   model.NewTimestamp(time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)),
		RoomType:   "Deluxe",
		RoomNumber: "201",
	}
}

func TestNewBookingCreated(t *testing.T) {
	booking := testBooking()
	event := NewBookingCreated(booking)

	if event.Type != TypeBookingCreated {
		t.Errorf("expected type %s, got %s", TypeBookingCreated, event.Type)
	}
	if event.BookingID != booking.ID {
		t.Errorf("expected booking id %s, got %s", booking.ID, event.BookingID)
	}
	if event.ID == "" {
		t.Errorf("expected a generated event id")
	}
	if event.OccurredAt.IsZero() {
		t.Errorf("expected occurredAt to be set")
	}
}

func TestEventIDsAreUnique(t *testing.T) {
	booking := testBooking()
	a := NewBookingDeleted(booking)
	b := NewBookingDeleted(booking)

	if a.ID == b.ID {
		t.Errorf("expected distinct event ids, both were %s", a.ID)
	}
}

func TestEvent_Payload(t *testing.T) {
	event := NewBookingCreated(testBooking())

	payload, err := event.Payload()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if decoded["type"] != TypeBookingCreated {
		t.Errorf("expected type %s in payload, got %v", TypeBookingCreated, decoded["type"])
	}
	if decoded["bookingId"] != event.BookingID {
		t.Errorf("expected bookingId %s in payload, got %v", event.BookingID, decoded["bookingId"])
	}
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}

	if err := p.Publish(context.Background(), NewBookingCreated(testBooking())); err != nil {
		t.Errorf("noop publish returned error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("noop close returned error: %v", err)
	}
}
