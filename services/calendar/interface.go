package calendar

import (
	"context"

	"shotz/models"
)

// Client pushes bookings to an external calendar. It is a best-effort side
// channel: booking success never depends on any of these calls.
type Client interface {
	CreateEvent(ctx context.Context, booking models.Booking) (string, error)
	UpdateEvent(ctx context.Context, booking models.Booking) error
	DeleteEvent(ctx context.Context, eventID string) error
}
