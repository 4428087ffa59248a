package admin

import (
	"testing"
	"time"

	bookingsRepo "shotz/database/repository/bookings"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAdmin(t *testing.T, passcode string) (*DefaultAdminService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	svc := &DefaultAdminService{
		Passcode:    passcode,
		SessionTTL:  time.Hour,
		AuthCache:   client,
		Repo:        bookingsRepo.NewRedisBookingRepo(client),
		CalendarSvc: &stubCalendar{eventID: "google_event_resync_1"},
		Logger:      zap.NewNop(),
	}
	return svc, mr
}

func TestLoginRejectsWrongPasscode(t *testing.T) {
	svc, _ := newTestAdmin(t, "1234")

	_, err := svc.Login("9999")
	assert.ErrorIs(t, err, ErrInvalidPasscode)

	_, err = svc.Login("")
	assert.ErrorIs(t, err, ErrInvalidPasscode)
}

func TestLoginRejectsWhenUnconfigured(t *testing.T) {
	svc, _ := newTestAdmin(t, "")

	// An unset passcode must never be matchable, even by an empty submission.
	_, err := svc.Login("")
	assert.ErrorIs(t, err, ErrInvalidPasscode)
}

func TestLoginIssuesSessionToken(t *testing.T) {
	svc, _ := newTestAdmin(t, "1234")

	token, err := svc.Login("1234")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, svc.IsAuthenticated(token))
	assert.False(t, svc.IsAuthenticated("forged-token"))
	assert.False(t, svc.IsAuthenticated(""))
}

func TestLogoutInvalidatesToken(t *testing.T) {
	svc, _ := newTestAdmin(t, "1234")

	token, err := svc.Login("1234")
	require.NoError(t, err)
	require.True(t, svc.IsAuthenticated(token))

	require.NoError(t, svc.Logout(token))
	assert.False(t, svc.IsAuthenticated(token))
}

func TestSessionExpires(t *testing.T) {
	svc, mr := newTestAdmin(t, "1234")

	token, err := svc.Login("1234")
	require.NoError(t, err)
	require.True(t, svc.IsAuthenticated(token))

	mr.FastForward(2 * time.Hour)
	assert.False(t, svc.IsAuthenticated(token))
}
