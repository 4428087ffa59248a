package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"shotz/models"
	"shotz/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitiateSession creates a new wizard session at the first stage and stores
// it in Redis. An optional pre-selection (service and package chosen from an
// external link) is applied with the same rules as explicit selection, except
// that unknown references are ignored rather than surfaced.
func (s *DefaultSessionService) InitiateSession(serviceID, packageName string) (*models.WizardSession, error) {
	ctx := context.Background()
	session := models.NewWizardSession(uuid.New().String())

	if serviceID != "" {
		w := &Wizard{Catalog: s.Catalog, Session: session}
		if err := w.SelectService(serviceID); err == nil && packageName != "" {
			// Ignore unknown packages the same way; the draft simply stays unset.
			_ = w.SelectPackage(packageName)
		}
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession returns the current state of a wizard session.
func (s *DefaultSessionService) GetSession(sessionID string) (*models.WizardSession, error) {
	return s.loadSession(context.Background(), sessionID)
}

// SelectService sets the draft's service and clears the package selection.
func (s *DefaultSessionService) SelectService(sessionID, serviceID string) (*models.WizardSession, error) {
	return s.mutate(sessionID, func(w *Wizard) error {
		return w.SelectService(serviceID)
	})
}

// SelectPackage sets the draft's package under the already-selected service.
func (s *DefaultSessionService) SelectPackage(sessionID, packageName string) (*models.WizardSession, error) {
	return s.mutate(sessionID, func(w *Wizard) error {
		return w.SelectPackage(packageName)
	})
}

// SetSchedule records the requested date and time slot. Empty values leave
// the corresponding field untouched.
func (s *DefaultSessionService) SetSchedule(sessionID, date, slot string) (*models.WizardSession, error) {
	return s.mutate(sessionID, func(w *Wizard) error {
		if date != "" {
			w.SetDate(date)
		}
		if slot != "" {
			w.SetTime(slot)
		}
		return nil
	})
}

// SetContactField sets a single contact field on the draft.
func (s *DefaultSessionService) SetContactField(sessionID, field, value string) (*models.WizardSession, error) {
	return s.mutate(sessionID, func(w *Wizard) error {
		return w.SetContactField(field, value)
	})
}

// SetPaymentMethod sets the draft's payment method.
func (s *DefaultSessionService) SetPaymentMethod(sessionID, method string) (*models.WizardSession, error) {
	return s.mutate(sessionID, func(w *Wizard) error {
		return w.SetPaymentMethod(method)
	})
}

// Advance moves the session forward one stage when the current stage is
// complete. From the final stage it triggers submission instead.
func (s *DefaultSessionService) Advance(sessionID string) (*AdvanceResult, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Stage == models.StageSubmitted {
		return nil, ErrAlreadySubmitted
	}

	if session.Stage == models.StageSelectPayment {
		confirmation, err := s.Submit(sessionID)
		if errors.Is(err, ErrDraftIncomplete) {
			w := &Wizard{Catalog: s.Catalog, Session: session}
			return &AdvanceResult{
				Advanced:  false,
				Stage:     session.Stage,
				StageName: session.Stage.String(),
				Missing:   s.allMissing(w),
			}, nil
		}
		if err != nil {
			return nil, err
		}
		return &AdvanceResult{
			Advanced:     true,
			Stage:        models.StageSubmitted,
			StageName:    models.StageSubmitted.String(),
			Confirmation: confirmation,
		}, nil
	}

	w := &Wizard{Catalog: s.Catalog, Session: session}
	if !w.Advance() {
		return &AdvanceResult{
			Advanced:  false,
			Stage:     session.Stage,
			StageName: session.Stage.String(),
			Missing:   w.MissingFields(session.Stage),
		}, nil
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return &AdvanceResult{
		Advanced:  true,
		Stage:     session.Stage,
		StageName: session.Stage.String(),
	}, nil
}

// Retreat moves the session back one stage without discarding draft data.
func (s *DefaultSessionService) Retreat(sessionID string) (*models.WizardSession, error) {
	return s.mutate(sessionID, func(w *Wizard) error {
		w.Retreat()
		return nil
	})
}

// Submit finalizes the draft: it assembles the booking record, hands it to
// the booking store exactly once, marks the session submitted, and kicks off
// the calendar sync as a fire-and-forget side channel. A second call on the
// same session is rejected.
func (s *DefaultSessionService) Submit(sessionID string) (*models.BookingConfirmation, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Stage == models.StageSubmitted {
		return nil, ErrAlreadySubmitted
	}

	w := &Wizard{Catalog: s.Catalog, Session: session}
	if !w.ReadyToSubmit() {
		return nil, ErrDraftIncomplete
	}

	svc, err := s.Catalog.FindByID(session.Draft.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve selected service: %w", err)
	}
	pkg, err := s.Catalog.FindPackage(session.Draft.ServiceID, session.Draft.PackageName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve selected package: %w", err)
	}

	record := models.Booking{
		ServiceID:     session.Draft.ServiceID,
		ServiceName:   svc.Name,
		PackageName:   pkg.Name,
		Date:          session.Draft.Date,
		Time:          session.Draft.Time,
		Name:          session.Draft.Name,
		Email:         session.Draft.Email,
		Phone:         session.Draft.Phone,
		Notes:         session.Draft.Notes,
		PaymentMethod: session.Draft.PaymentMethod,
		Deposit:       ComputeDeposit(*pkg),
	}

	created, err := s.Repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to store booking: %w", err)
	}

	session.Stage = models.StageSubmitted
	session.BookingID = created.ID
	if err := s.saveSession(ctx, session); err != nil {
		// The stored booking is authoritative at this point; failing the whole
		// submission here would invite a retry that duplicates the record.
		s.Logger.Warn("Failed to mark session submitted",
			zap.String("bookingId", created.ID), zap.Error(err))
	}

	s.syncCalendar(*created)

	s.Logger.Info("Booking submitted",
		zap.String("bookingId", created.ID),
		zap.String("service", created.ServiceName),
		zap.String("package", created.PackageName),
		zap.Int("deposit", created.Deposit),
	)

	return &models.BookingConfirmation{
		BookingID: created.ID,
		Service:   created.ServiceName,
		Package:   created.PackageName,
		Date:      created.Date,
		Time:      created.Time,
		Deposit:   created.Deposit,
		Status:    created.Status,
	}, nil
}

// CancelSession discards an in-progress wizard session.
func (s *DefaultSessionService) CancelSession(sessionID string) error {
	ctx := context.Background()
	if err := s.Cache.Del(ctx, utils.WizardSessionPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

// syncCalendar pushes the booking to the calendar without blocking submission.
// The event reference is attached only if the sync completes.
func (s *DefaultSessionService) syncCalendar(booking models.Booking) {
	if s.CalendarSvc == nil {
		return
	}
	go func() {
		ctx := context.Background()
		eventID, err := s.CalendarSvc.CreateEvent(ctx, booking)
		if err != nil {
			s.Logger.Warn("Calendar sync failed", zap.String("bookingId", booking.ID), zap.Error(err))
			return
		}
		if err := s.Repo.SetCalendarEventID(ctx, booking.ID, eventID); err != nil {
			s.Logger.Warn("Failed to attach calendar event to booking",
				zap.String("bookingId", booking.ID), zap.Error(err))
		}
	}()
}

func (s *DefaultSessionService) mutate(sessionID string, fn func(*Wizard) error) (*models.WizardSession, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	w := &Wizard{Catalog: s.Catalog, Session: session}
	if err := fn(w); err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultSessionService) loadSession(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	data, err := s.Cache.Get(ctx, utils.WizardSessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read booking session: %w", err)
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultSessionService) saveSession(ctx context.Context, session *models.WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, utils.WizardSessionPrefix+session.SessionID, data, s.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *DefaultSessionService) allMissing(w *Wizard) []string {
	var missing []string
	for stage := models.StageSelectService; stage <= models.StageSelectPayment; stage++ {
		missing = append(missing, w.MissingFields(stage)...)
	}
	return missing
}
