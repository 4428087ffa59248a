package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shotz/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SimulatedClient stands in for the Google Calendar integration. It performs
// no network calls: each operation waits the configured delay and fabricates
// a result, so the rest of the system exercises the same timing and wiring it
// would with a real client.
type SimulatedClient struct {
	Delay  time.Duration
	Logger *zap.Logger
}

// NewSimulatedClient returns a simulated calendar client.
func NewSimulatedClient(delay time.Duration, logger *zap.Logger) *SimulatedClient {
	return &SimulatedClient{Delay: delay, Logger: logger}
}

// CreateEvent fabricates a calendar event ID for the booking.
func (c *SimulatedClient) CreateEvent(ctx context.Context, booking models.Booking) (string, error) {
	if err := c.wait(ctx); err != nil {
		return "", err
	}
	eventID := fmt.Sprintf("google_event_%d_%s", time.Now().UnixMilli(), randomSuffix())
	c.Logger.Info("Simulated calendar event created",
		zap.String("eventId", eventID),
		zap.String("summary", fmt.Sprintf("%s - %s", booking.ServiceName, booking.Name)),
		zap.String("start", fmt.Sprintf("%s %s", booking.Date, booking.Time)),
		zap.String("bookingId", booking.ID),
	)
	return eventID, nil
}

// UpdateEvent pretends to update the booking's calendar event.
func (c *SimulatedClient) UpdateEvent(ctx context.Context, booking models.Booking) error {
	if booking.CalendarEventID == "" {
		return fmt.Errorf("booking %s has no calendar event", booking.ID)
	}
	if err := c.wait(ctx); err != nil {
		return err
	}
	c.Logger.Info("Simulated calendar event updated", zap.String("eventId", booking.CalendarEventID))
	return nil
}

// DeleteEvent pretends to delete a calendar event.
func (c *SimulatedClient) DeleteEvent(ctx context.Context, eventID string) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	c.Logger.Info("Simulated calendar event deleted", zap.String("eventId", eventID))
	return nil
}

func (c *SimulatedClient) wait(ctx context.Context) error {
	if c.Delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(c.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func randomSuffix() string {
	return strings.SplitN(uuid.New().String(), "-", 2)[0]
}
