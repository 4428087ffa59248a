package admin

import (
	"context"
	"fmt"

	"shotz/models"

	"go.uber.org/zap"
)

// ListBookings returns the booking collection, newest first, optionally
// filtered by status.
func (s *DefaultAdminService) ListBookings(ctx context.Context, status string) ([]models.Booking, error) {
	if status == "" || status == "all" {
		return s.Repo.GetAll(ctx)
	}
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.Repo.GetByStatus(ctx, status)
}

// CreateBooking records a booking entered by hand from the admin panel,
// bypassing the wizard. Name, email, date, time and service are required;
// phone and notes are optional. The store assigns the ID, pending status and
// creation timestamp.
func (s *DefaultAdminService) CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	if booking.Name == "" || booking.Email == "" || booking.Date == "" ||
		booking.Time == "" || booking.ServiceName == "" {
		return nil, ErrMissingFields
	}
	created, err := s.Repo.Create(ctx, booking)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("Booking created by admin", zap.String("bookingId", created.ID))
	return created, nil
}

// GetBooking returns a single booking by ID.
func (s *DefaultAdminService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

// UpdateBooking replaces the stored booking's editable fields.
func (s *DefaultAdminService) UpdateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	if booking.Status != "" && !models.ValidStatus(booking.Status) {
		return nil, ErrInvalidStatus
	}
	updated, err := s.Repo.Update(ctx, booking)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("Booking updated", zap.String("bookingId", updated.ID))
	return updated, nil
}

// UpdateStatus overrides a booking's status. Admin override is the only
// business transition defined for a finalized booking.
func (s *DefaultAdminService) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	updated, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("Booking status updated",
		zap.String("bookingId", id), zap.String("status", status))
	return updated, nil
}

// DeleteBooking removes a booking from the collection.
func (s *DefaultAdminService) DeleteBooking(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.Logger.Info("Booking deleted", zap.String("bookingId", id))
	return nil
}

// ResyncCalendar pushes the booking to the calendar again and attaches the
// resulting event reference. Unlike submission-time sync, the admin waits for
// the outcome.
func (s *DefaultAdminService) ResyncCalendar(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	eventID, err := s.CalendarSvc.CreateEvent(ctx, *booking)
	if err != nil {
		return nil, fmt.Errorf("calendar sync failed: %w", err)
	}
	if err := s.Repo.SetCalendarEventID(ctx, id, eventID); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}
