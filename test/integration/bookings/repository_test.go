package integrationtests

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingserrors "hoteldesk/internal/bookings/errors"
	"hoteldesk/internal/bookings/repository"
	"hoteldesk/pkg/client"
	"hoteldesk/pkg/config"
	"hoteldesk/pkg/logger"
	"hoteldesk/pkg/model"
	"hoteldesk/test/integration/testutil"
)

const ServiceName = "bookings-integration-tests"

func newTestRepository(t *testing.T) (repository.BookingRepository, *testutil.MongoHelper) {
	t.Helper()

	uri, dbName := testutil.RequireMongo(t)
	helper := testutil.NewMongoHelper(t, uri, dbName)
	helper.CleanCollection(t, repository.CollectionName)
	t.Cleanup(func() {
		helper.CleanCollection(t, repository.CollectionName)
		helper.Close(t)
	})

	cfg := &config.Config{
		MongoDatabaseName: dbName,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		Log: logger.New(logger.Config{
			Level:   "error",
			Format:  logger.JSON,
			Service: ServiceName,
		}),
		Client: &client.Client{Mongo: helper.Client},
	}

	return repository.NewMongoBookingRepository(cfg), helper
}

func newBooking(roomNumber string, checkIn, checkOut time.Time) *model.Booking {
	return &model.Booking{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "123456",
		Gender:     "F",
		CheckIn:    model.NewTimestamp(checkIn),
		CheckOut:   model.NewTimestamp(checkOut),
		RoomType:   "Deluxe",
		RoomNumber: roomNumber,
	}
}

func TestFindRecent_NewestFirstWithLimit(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	checkIn := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	rooms := []string{
		"101", "102", "103", "104", "105", "106",
		"107", "108", "109", "110", "111", "112",
	}
	for _, room := range rooms {
		if err := repo.Insert(ctx, newBooking(room, checkIn, checkIn.Add(48*time.Hour))); err != nil {
			t.Fatalf("failed to insert booking for room %s: %v", room, err)
		}
		// CreatedAt is truncated to milliseconds at insert.
		time.Sleep(2 * time.Millisecond)
	}

	recent, err := repo.FindRecent(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(recent) != 10 {
		t.Fatalf("expected 10 bookings, got %d", len(recent))
	}
	if recent[0].RoomNumber != "112" {
		t.Errorf("expected the last inserted booking first, got room %s", recent[0].RoomNumber)
	}
	for i := 1; i < len(recent); i++ {
		if recent[i-1].CreatedAt.Before(recent[i].CreatedAt) {
			t.Errorf("bookings out of order at %d: %v before %v",
				i, recent[i-1].CreatedAt, recent[i].CreatedAt)
		}
	}
}

func TestDayWindow_HalfOpenBounds(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	from := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	inserts := []struct {
		room    string
		checkIn time.Time
	}{
		{"201", from},                          // inclusive lower bound
		{"202", to.Add(-time.Millisecond)},     // last instant inside
		{"203", to},                            // exclusive upper bound
		{"204", from.Add(-time.Millisecond)},   // just before the window
	}
	for _, in := range inserts {
		if err := repo.Insert(ctx, newBooking(in.room, in.checkIn, in.checkIn.Add(48*time.Hour))); err != nil {
			t.Fatalf("failed to insert booking for room %s: %v", in.room, err)
		}
	}

	arrivals, err := repo.FindByCheckInRange(ctx, from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(arrivals) != 2 {
		t.Fatalf("expected 2 bookings inside the window, got %d", len(arrivals))
	}
	if arrivals[0].RoomNumber != "201" || arrivals[1].RoomNumber != "202" {
		t.Errorf("unexpected window contents: %s, %s",
			arrivals[0].RoomNumber, arrivals[1].RoomNumber)
	}

	count, err := repo.CountByCheckInRange(ctx, from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected count 2, got %d", count)
	}
}

func TestCountByCheckOutRange_HalfOpenBounds(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	from := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	checkIn := from.Add(-48 * time.Hour)
	for _, checkOut := range []time.Time{from, to} {
		if err := repo.Insert(ctx, newBooking("301", checkIn, checkOut)); err != nil {
			t.Fatalf("failed to insert booking: %v", err)
		}
	}

	count, err := repo.CountByCheckOutRange(ctx, from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected only the lower bound inside the window, got %d", count)
	}
}

func TestDeleteByID_RemovesAndReturnsRecord(t *testing.T) {
	repo, helper := newTestRepository(t)
	ctx := context.Background()

	checkIn := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	booking := newBooking("401", checkIn, checkIn.Add(48*time.Hour))
	if err := repo.Insert(ctx, booking); err != nil {
		t.Fatalf("failed to insert booking: %v", err)
	}
	if booking.ID == "" {
		t.Fatalf("expected Insert to assign an id")
	}

	deleted, err := repo.DeleteByID(ctx, booking.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.RoomNumber != "401" {
		t.Errorf("expected the removed record back, got room %s", deleted.RoomNumber)
	}
	if got := helper.CountDocuments(t, repository.CollectionName); got != 0 {
		t.Errorf("expected empty collection after delete, got %d documents", got)
	}

	if _, err := repo.DeleteByID(ctx, booking.ID); !errors.Is(err, bookingserrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}

	if _, err := repo.DeleteByID(ctx, "not-an-id"); !errors.Is(err, bookingserrors.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID for a malformed id, got %v", err)
	}
}
