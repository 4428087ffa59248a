package bookingsRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shotz/models"
	"shotz/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// redisBookingRepo keeps the whole booking collection serialized as one JSON
// array under a single key. Every mutation reads the collection whole and
// writes it back whole; there are no partial updates.
type redisBookingRepo struct {
	client *redis.Client
	key    string
}

// NewRedisBookingRepo returns a Repository backed by the given Redis client.
func NewRedisBookingRepo(client *redis.Client) Repository {
	return &redisBookingRepo{
		client: client,
		key:    utils.BookingsKey,
	}
}

func (r *redisBookingRepo) load(ctx context.Context) ([]models.Booking, error) {
	data, err := r.client.Get(ctx, r.key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read booking collection: %w", err)
	}
	var bookings []models.Booking
	if err := json.Unmarshal([]byte(data), &bookings); err != nil {
		return nil, fmt.Errorf("failed to parse booking collection: %w", err)
	}
	return bookings, nil
}

func (r *redisBookingRepo) save(ctx context.Context, bookings []models.Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("failed to marshal booking collection: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write booking collection: %w", err)
	}
	return nil
}

// Create assigns a fresh ID, pending status and creation timestamp, then
// prepends the booking so the collection stays newest-first.
func (r *redisBookingRepo) Create(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	booking.ID = uuid.New().String()
	booking.Status = models.StatusPending
	booking.CreatedAt = time.Now()

	bookings = append([]models.Booking{booking}, bookings...)
	if err := r.save(ctx, bookings); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *redisBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	return r.load(ctx)
}

func (r *redisBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *redisBookingRepo) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Booking
	for _, b := range bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *redisBookingRepo) GetByStatus(ctx context.Context, status string) ([]models.Booking, error) {
	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Booking
	for _, b := range bookings {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

// Update replaces the stored booking with the same ID. The ID and creation
// timestamp are preserved from the stored record.
func (r *redisBookingRepo) Update(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == booking.ID {
			booking.CreatedAt = bookings[i].CreatedAt
			bookings[i] = booking
			if err := r.save(ctx, bookings); err != nil {
				return nil, err
			}
			return &bookings[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *redisBookingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			bookings[i].Status = status
			if err := r.save(ctx, bookings); err != nil {
				return nil, err
			}
			return &bookings[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *redisBookingRepo) SetCalendarEventID(ctx context.Context, id, eventID string) error {
	bookings, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			bookings[i].CalendarEventID = eventID
			return r.save(ctx, bookings)
		}
	}
	return ErrNotFound
}

func (r *redisBookingRepo) Delete(ctx context.Context, id string) error {
	bookings, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			bookings = append(bookings[:i], bookings[i+1:]...)
			return r.save(ctx, bookings)
		}
	}
	return ErrNotFound
}
