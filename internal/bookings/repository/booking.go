package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingserrors "hoteldesk/internal/bookings/errors"
	"hoteldesk/pkg/config"
	"hoteldesk/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "bookings"

	FieldCheckIn   = "checkIn"
	FieldCheckOut  = "checkOut"
	FieldCreatedAt = "createdAt"
	FieldRoomNum   = "roomNumber"
)

type mongoBookingRepository struct {
	cfg        *config.Config
	db         *mongo.Database
	collection *mongo.Collection
}

type BookingRepository interface {
	Insert(ctx context.Context, booking *model.Booking) error
	FindAll(ctx context.Context) ([]*model.Booking, error)
	FindRecent(ctx context.Context, limit int) ([]*model.Booking, error)
	FindByCheckInRange(ctx context.Context, from, to time.Time) ([]*model.Booking, error)
	FindByCheckOutRange(ctx context.Context, from, to time.Time) ([]*model.Booking, error)
	Count(ctx context.Context) (int64, error)
	CountByCheckInRange(ctx context.Context, from, to time.Time) (int64, error)
	CountByCheckOutRange(ctx context.Context, from, to time.Time) (int64, error)
	DeleteByID(ctx context.Context, id string) (*model.Booking, error)
	RoomNumbers(ctx context.Context) ([]string, error)
}

func NewMongoBookingRepository(cfg *config.Config) BookingRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBookingRepository{
		cfg:        cfg,
		db:         db,
		collection: db.Collection(CollectionName),
	}
}

// withTimeout bounds a store call without extending an already tighter
// caller deadline.
func (r *mongoBookingRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	remaining := time.Until(deadline)
	if remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *mongoBookingRepository) Insert(ctx context.Context, booking *model.Booking) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	booking.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid.Hex()
	}
	return nil
}

func (r *mongoBookingRepository) FindAll(ctx context.Context) ([]*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*model.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}

func (r *mongoBookingRepository) FindRecent(ctx context.Context, limit int) ([]*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: FieldCreatedAt, Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find recent bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*model.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}

func (r *mongoBookingRepository) FindByCheckInRange(ctx context.Context, from, to time.Time) ([]*model.Booking, error) {
	return r.findByDayWindow(ctx, FieldCheckIn, from, to)
}

func (r *mongoBookingRepository) FindByCheckOutRange(ctx context.Context, from, to time.Time) ([]*model.Booking, error) {
	return r.findByDayWindow(ctx, FieldCheckOut, from, to)
}

// findByDayWindow matches field >= from && field < to, ascending by field.
func (r *mongoBookingRepository) findByDayWindow(ctx context.Context, field string, from, to time.Time) ([]*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := dayWindowFilter(field, from, to)
	opts := options.Find().SetSort(bson.D{{Key: field, Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings by %s: %w", field, err)
	}
	defer cursor.Close(ctx)

	var bookings []*model.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}

func (r *mongoBookingRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	return count, nil
}

func (r *mongoBookingRepository) CountByCheckInRange(ctx context.Context, from, to time.Time) (int64, error) {
	return r.countByDayWindow(ctx, FieldCheckIn, from, to)
}

func (r *mongoBookingRepository) CountByCheckOutRange(ctx context.Context, from, to time.Time) (int64, error) {
	return r.countByDayWindow(ctx, FieldCheckOut, from, to)
}

func (r *mongoBookingRepository) countByDayWindow(ctx context.Context, field string, from, to time.Time) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, dayWindowFilter(field, from, to))
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings by %s: %w", field, err)
	}

	return count, nil
}

func dayWindowFilter(field string, from, to time.Time) bson.M {
	return bson.M{
		field: bson.M{
			"$gte": from,
			"$lt":  to,
		},
	}
}

func (r *mongoBookingRepository) DeleteByID(ctx context.Context, id string) (*model.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", bookingserrors.ErrInvalidID, id)
	}

	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	var deleted model.Booking
	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, bookingserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete booking: %w", err)
	}

	return &deleted, nil
}

func (r *mongoBookingRepository) RoomNumbers(ctx context.Context) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{FieldRoomNum: 1, "_id": 0})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find room numbers: %w", err)
	}
	defer cursor.Close(ctx)

	var records []struct {
		RoomNumber string `bson:"roomNumber"`
	}
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode room numbers: %w", err)
	}

	rooms := make([]string, 0, len(records))
	for _, record := range records {
		rooms = append(rooms, record.RoomNumber)
	}

	return rooms, nil
}
