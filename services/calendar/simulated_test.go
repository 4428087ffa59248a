package calendar

import (
	"context"
	"testing"
	"time"

	"shotz/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateEventFormat(t *testing.T) {
	c := NewSimulatedClient(0, zap.NewNop())

	booking := models.Booking{
		ID:          "b-1",
		ServiceName: "Music Videos",
		Name:        "John Doe",
		Date:        "2026-09-15",
		Time:        "10:00 AM",
	}
	eventID, err := c.CreateEvent(context.Background(), booking)
	require.NoError(t, err)
	assert.Regexp(t, `^google_event_\d+_[0-9a-f]+$`, eventID)

	other, err := c.CreateEvent(context.Background(), booking)
	require.NoError(t, err)
	assert.NotEqual(t, eventID, other)
}

func TestCreateEventHonorsDelay(t *testing.T) {
	c := NewSimulatedClient(50*time.Millisecond, zap.NewNop())

	start := time.Now()
	_, err := c.CreateEvent(context.Background(), models.Booking{ID: "b-1"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestCreateEventCancelled(t *testing.T) {
	c := NewSimulatedClient(time.Minute, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.CreateEvent(ctx, models.Booking{ID: "b-1"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestUpdateEventRequiresEventID(t *testing.T) {
	c := NewSimulatedClient(0, zap.NewNop())

	err := c.UpdateEvent(context.Background(), models.Booking{ID: "b-1"})
	require.Error(t, err)

	err = c.UpdateEvent(context.Background(), models.Booking{
		ID:              "b-1",
		CalendarEventID: "google_event_1_abc",
	})
	assert.NoError(t, err)
}

func TestDeleteEvent(t *testing.T) {
	c := NewSimulatedClient(0, zap.NewNop())
	assert.NoError(t, c.DeleteEvent(context.Background(), "google_event_1_abc"))
}
