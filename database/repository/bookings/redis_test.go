package bookingsRepo

import (
	"context"
	"testing"

	"shotz/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) Repository {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewRedisBookingRepo(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func sampleBooking(email string) models.Booking {
	return models.Booking{
		ServiceID:     "music-videos",
		ServiceName:   "Music Videos",
		PackageName:   "Standard",
		Date:          "2026-09-15",
		Time:          "10:00 AM",
		Name:          "John Doe",
		Email:         email,
		Phone:         "555-0100",
		PaymentMethod: models.PaymentCard,
		Deposit:       500,
	}
}

func TestCreateAssignsIdentityAndDefaults(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleBooking("a@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreatePrependsNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, sampleBooking("a@example.com"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, sampleBooking("b@example.com"))
	require.NoError(t, err)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestGetAllEmpty(t *testing.T) {
	repo := newTestRepo(t)
	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleBooking("a@example.com"))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got.Email)

	_, err = repo.GetByID(ctx, "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByDateAndStatus(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	b1 := sampleBooking("a@example.com")
	b1.Date = "2026-09-15"
	created1, err := repo.Create(ctx, b1)
	require.NoError(t, err)

	b2 := sampleBooking("b@example.com")
	b2.Date = "2026-09-16"
	created2, err := repo.Create(ctx, b2)
	require.NoError(t, err)

	byDate, err := repo.GetByDate(ctx, "2026-09-15")
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	assert.Equal(t, created1.ID, byDate[0].ID)

	_, err = repo.UpdateStatus(ctx, created2.ID, models.StatusConfirmed)
	require.NoError(t, err)

	confirmed, err := repo.GetByStatus(ctx, models.StatusConfirmed)
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, created2.ID, confirmed[0].ID)

	pending, err := repo.GetByStatus(ctx, models.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, created1.ID, pending[0].ID)
}

func TestUpdatePreservesCreatedAt(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleBooking("a@example.com"))
	require.NoError(t, err)

	edited := *created
	edited.Name = "Jane Doe"
	edited.Notes = "rescheduled once"
	edited.CreatedAt = created.CreatedAt.AddDate(0, 0, 1) // must be ignored

	updated, err := repo.Update(ctx, edited)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, "rescheduled once", updated.Notes)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))

	missing := edited
	missing.ID = "no-such-id"
	_, err = repo.Update(ctx, missing)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleBooking("a@example.com"))
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, created.ID, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)

	_, err = repo.UpdateStatus(ctx, "no-such-id", models.StatusCancelled)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetCalendarEventID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleBooking("a@example.com"))
	require.NoError(t, err)

	require.NoError(t, repo.SetCalendarEventID(ctx, created.ID, "google_event_1_abc"))
	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "google_event_1_abc", got.CalendarEventID)

	assert.ErrorIs(t, repo.SetCalendarEventID(ctx, "no-such-id", "x"), ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	keep, err := repo.Create(ctx, sampleBooking("keep@example.com"))
	require.NoError(t, err)
	drop, err := repo.Create(ctx, sampleBooking("drop@example.com"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, drop.ID))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, keep.ID, all[0].ID)

	assert.ErrorIs(t, repo.Delete(ctx, drop.ID), ErrNotFound)
}
