package admin

import (
	"context"
	"errors"
	"time"

	bookingsRepo "shotz/database/repository/bookings"
	"shotz/models"
	"shotz/services/calendar"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	// ErrInvalidPasscode is returned when the supplied passcode does not match.
	ErrInvalidPasscode = errors.New("invalid passcode")

	// ErrInvalidStatus is returned for a status outside the known set.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrMissingFields is returned when a manually created booking lacks a
	// required field.
	ErrMissingFields = errors.New("missing required booking fields")
)

// Service exposes the passcode-gated admin surface: session management plus
// management of the persisted booking collection.
type Service interface {
	Login(passcode string) (string, error)
	Logout(token string) error
	IsAuthenticated(token string) bool

	ListBookings(ctx context.Context, status string) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error)
	UpdateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	ResyncCalendar(ctx context.Context, id string) (*models.Booking, error)
}

// DefaultAdminService implements Service.
type DefaultAdminService struct {
	Passcode    string
	SessionTTL  time.Duration
	AuthCache   *redis.Client
	Repo        bookingsRepo.Repository
	CalendarSvc calendar.Client
	Logger      *zap.Logger
}
