package service

import (
	"context"
	"errors"
	"sync"
	"time"

	bookingserrors "hoteldesk/internal/bookings/errors"
	"hoteldesk/internal/bookings/repository"
	"hoteldesk/internal/bookings/validator"
	"hoteldesk/pkg/config"
	"hoteldesk/pkg/dayrange"
	apperrors "hoteldesk/pkg/errors"
	"hoteldesk/pkg/events"
	"hoteldesk/pkg/model"
	"hoteldesk/pkg/sanitizer"
)

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	Recent(ctx context.Context) ([]*model.Booking, error)
	All(ctx context.Context) ([]*model.Booking, error)
	Stats(ctx context.Context) (*model.DashboardStats, error)
	Arrivals(ctx context.Context) ([]*model.Booking, error)
	Departures(ctx context.Context) ([]*model.Booking, error)
	Delete(ctx context.Context, id string) (*model.Booking, error)
	OccupiedRooms(ctx context.Context) ([]string, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	bookingValidator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: bookingValidator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	// The store owns both fields; discard anything the caller sent.
	booking.ID = ""
	booking.CreatedAt = time.Time{}

	s.sanitize(booking)

	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return apperrors.Validation(fieldErrs.Error(), map[string]any{"fields": fieldErrs})
		}
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Insert(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return apperrors.Internal("Failed to create booking", err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"room_number", booking.RoomNumber,
		"check_in", booking.CheckIn.Time,
	)
	s.publish(ctx, events.NewBookingCreated(booking))
	return nil
}

func (s *bookingService) Recent(ctx context.Context) ([]*model.Booking, error) {
	bookings, err := s.repo.FindRecent(ctx, config.RecentBookingsLimit)
	if err != nil {
		s.cfg.Log.Error("Failed to list recent bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve recent bookings", err)
	}

	return bookings, nil
}

func (s *bookingService) All(ctx context.Context) ([]*model.Booking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	return bookings, nil
}

// Stats computes the three dashboard counters against a single day window
// resolved once per request.
func (s *bookingService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	from, to := dayrange.Today(time.Now())

	var total, arrivals, departures int64
	var errTotal, errArrivals, errDepartures error
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		total, errTotal = s.repo.Count(ctx)
	}()

	go func() {
		defer wg.Done()
		arrivals, errArrivals = s.repo.CountByCheckInRange(ctx, from, to)
	}()

	go func() {
		defer wg.Done()
		departures, errDepartures = s.repo.CountByCheckOutRange(ctx, from, to)
	}()

	wg.Wait()

	for _, err := range []error{errTotal, errArrivals, errDepartures} {
		if err != nil {
			s.cfg.Log.Error("Failed to compute dashboard stats", "error", err)
			return nil, apperrors.Internal("Failed to compute dashboard stats", err)
		}
	}

	return &model.DashboardStats{
		TotalBookings: total,
		Arrivals:      arrivals,
		Departures:    departures,
	}, nil
}

func (s *bookingService) Arrivals(ctx context.Context) ([]*model.Booking, error) {
	from, to := dayrange.Today(time.Now())

	bookings, err := s.repo.FindByCheckInRange(ctx, from, to)
	if err != nil {
		s.cfg.Log.Error("Failed to list arrivals", "error", err)
		return nil, apperrors.Internal("Failed to retrieve today's arrivals", err)
	}

	return bookings, nil
}

func (s *bookingService) Departures(ctx context.Context) ([]*model.Booking, error) {
	from, to := dayrange.Today(time.Now())

	bookings, err := s.repo.FindByCheckOutRange(ctx, from, to)
	if err != nil {
		s.cfg.Log.Error("Failed to list departures", "error", err)
		return nil, apperrors.Internal("Failed to retrieve today's departures", err)
	}

	return bookings, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID")
		}
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		s.cfg.Log.Error("Failed to delete booking", "id", id, "error", err)
		return nil, apperrors.Internal("Server error during deletion", err)
	}

	s.cfg.Log.Info("Booking deleted successfully", "id", id)
	s.publish(ctx, events.NewBookingDeleted(deleted))
	return deleted, nil
}

// OccupiedRooms returns every room number appearing in any booking,
// regardless of stay dates. A stored record with an empty room number fails
// the whole operation rather than being skipped.
func (s *bookingService) OccupiedRooms(ctx context.Context) ([]string, error) {
	rooms, err := s.repo.RoomNumbers(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list room numbers", "error", err)
		return nil, apperrors.Internal("Failed to retrieve room status", err)
	}

	for _, room := range rooms {
		if room == "" {
			s.cfg.Log.Error("Corrupt booking record encountered", "error", bookingserrors.ErrCorruptRecord)
			return nil, apperrors.CorruptRecord("Invalid booking data")
		}
	}

	return rooms, nil
}

// --- Helpers ---

func (s *bookingService) sanitize(b *model.Booking) {
	b.Name = sanitizer.TrimAndNormalize(b.Name)
	b.Email = sanitizer.TrimAndNormalize(b.Email)
	b.Phone = sanitizer.TrimAndNormalize(b.Phone)
	b.Gender = sanitizer.TrimAndNormalize(b.Gender)
	b.RoomType = sanitizer.TrimAndNormalize(b.RoomType)
	b.RoomNumber = sanitizer.TrimAndNormalize(b.RoomNumber)
}

func (s *bookingService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event",
			"event_type", event.Type,
			"booking_id", event.BookingID,
			"error", err,
		)
	}
}
