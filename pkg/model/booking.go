package model

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

type Booking struct {
	ID         string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name       string    `json:"name" bson:"name" validate:"required"`
	Email      string    `json:"email" bson:"email" validate:"required"`
	Phone      string    `json:"phone" bson:"phone" validate:"required"`
	Gender     string    `json:"gender" bson:"gender" validate:"required"`
	CheckIn    Timestamp `json:"checkIn" bson:"checkIn" validate:"required"`
	CheckOut   Timestamp `json:"checkOut" bson:"checkOut" validate:"required"`
	RoomType   string    `json:"roomType" bson:"roomType" validate:"required"`
	RoomNumber string    `json:"roomNumber" bson:"roomNumber" validate:"required"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt" validate:"omitempty"`
}

type DashboardStats struct {
	TotalBookings int64 `json:"totalBookings"`
	Arrivals      int64 `json:"arrivals"`
	Departures    int64 `json:"departures"`
}

// Timestamp is a time.Time that also accepts bare calendar dates on the wire.
// Clients send check-in/check-out as either RFC3339 or "2006-01-02"; bare
// dates are interpreted at midnight server-local time.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time)
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q: expected RFC3339 or YYYY-MM-DD", s)
}

func (t Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.Time)
}

func (t *Timestamp) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	var parsed time.Time
	if err := bson.UnmarshalValue(bt, data, &parsed); err != nil {
		return fmt.Errorf("failed to decode timestamp: %w", err)
	}
	t.Time = parsed
	return nil
}
