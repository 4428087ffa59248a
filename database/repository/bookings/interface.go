package bookingsRepo

import (
	"context"
	"errors"

	"shotz/models"
)

// ErrNotFound is returned when no booking matches the given ID.
var ErrNotFound = errors.New("booking not found")

// Repository is the append-oriented store of finalized bookings. The wizard
// only ever calls Create; everything else serves the admin view.
type Repository interface {
	Create(ctx context.Context, booking models.Booking) (*models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
	GetByStatus(ctx context.Context, status string) ([]models.Booking, error)
	Update(ctx context.Context, booking models.Booking) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error)
	SetCalendarEventID(ctx context.Context, id, eventID string) error
	Delete(ctx context.Context, id string) error
}
