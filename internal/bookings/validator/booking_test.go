package validator

import (
	"errors"
	"testing"
	"time"

	"hoteldesk/pkg/logger"
	"hoteldesk/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:     "info",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
}

func validBooking() *model.Booking {
	return &model.Booking{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "123456",
		Gender:     "F",
		CheckIn:    model.NewTimestamp(time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)),
		CheckOut:   model.NewTimestamp(time.Date(2024, 1, 12, 0, 0, 0, 0, time.Local)),
		RoomType:   "Deluxe",
		RoomNumber: "201",
	}
}

func TestValidate_ValidBooking(t *testing.T) {
	v := NewBookingValidator(testLogger())

	if err := v.Validate(validBooking()); err != nil {
		t.Errorf("expected valid booking to pass, got: %v", err)
	}
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	v := NewBookingValidator(testLogger())

	tests := []struct {
		name      string
		mutate    func(b *model.Booking)
		wantField string
	}{
		{"missing name", func(b *model.Booking) { b.Name = "" }, "Name"},
		{"missing email", func(b *model.Booking) { b.Email = "" }, "Email"},
		{"missing phone", func(b *model.Booking) { b.Phone = "" }, "Phone"},
		{"missing gender", func(b *model.Booking) { b.Gender = "" }, "Gender"},
		{"missing checkIn", func(b *model.Booking) { b.CheckIn = model.Timestamp{} }, "CheckIn"},
		{"missing checkOut", func(b *model.Booking) { b.CheckOut = model.Timestamp{} }, "CheckOut"},
		{"missing roomType", func(b *model.Booking) { b.RoomType = "" }, "RoomType"},
		{"missing roomNumber", func(b *model.Booking) { b.RoomNumber = "" }, "RoomNumber"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := validBooking()
			tt.mutate(booking)

			err := v.Validate(booking)
			if err == nil {
				t.Fatalf("expected validation to fail")
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			if len(verrs) != 1 {
				t.Fatalf("expected exactly one violation, got %d: %v", len(verrs), verrs)
			}
			if verrs[0].Field != tt.wantField {
				t.Errorf("expected violation on %s, got %s", tt.wantField, verrs[0].Field)
			}
		})
	}
}

func TestValidate_ReportsAllViolations(t *testing.T) {
	v := NewBookingValidator(testLogger())

	booking := validBooking()
	booking.Name = ""
	booking.Email = ""
	booking.RoomNumber = ""

	err := v.Validate(booking)
	if err == nil {
		t.Fatalf("expected validation to fail")
	}

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 3 {
		t.Fatalf("expected three violations, got %d: %v", len(verrs), verrs)
	}

	got := map[string]bool{}
	for _, field := range verrs.Fields() {
		got[field] = true
	}
	for _, want := range []string{"Name", "Email", "RoomNumber"} {
		if !got[want] {
			t.Errorf("expected a violation for %s, fields were %v", want, verrs.Fields())
		}
	}
}

func TestValidate_CheckOutBeforeCheckInAllowed(t *testing.T) {
	// No ordering invariant exists between the stay dates.
	v := NewBookingValidator(testLogger())

	booking := validBooking()
	booking.CheckIn, booking.CheckOut = booking.CheckOut, booking.CheckIn

	if err := v.Validate(booking); err != nil {
		t.Errorf("expected reversed stay dates to pass validation, got: %v", err)
	}
}

func TestValidate_MalformedID(t *testing.T) {
	v := NewBookingValidator(testLogger())

	booking := validBooking()
	booking.ID = "not-an-object-id"

	err := v.Validate(booking)
	if err == nil {
		t.Fatalf("expected validation to fail for malformed id")
	}

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if verrs[0].Field != "ID" {
		t.Errorf("expected violation on ID, got %s", verrs[0].Field)
	}
}
