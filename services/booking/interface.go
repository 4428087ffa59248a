package booking

import (
	bookingsRepo "shotz/database/repository/bookings"
	"shotz/models"
	"shotz/services/calendar"
	"shotz/services/catalog"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AdvanceResult describes the outcome of an advance attempt. When the current
// stage's completeness rule fails, Advanced is false and Missing names the
// blocking fields; no stage transition happens.
type AdvanceResult struct {
	Advanced     bool                        `json:"advanced"`
	Stage        models.Stage                `json:"stage"`
	StageName    string                      `json:"stageName"`
	Missing      []string                    `json:"missing,omitempty"`
	Confirmation *models.BookingConfirmation `json:"confirmation,omitempty"`
}

// SessionService manages stateful booking wizard sessions.
type SessionService interface {
	InitiateSession(serviceID, packageName string) (*models.WizardSession, error)
	GetSession(sessionID string) (*models.WizardSession, error)
	SelectService(sessionID, serviceID string) (*models.WizardSession, error)
	SelectPackage(sessionID, packageName string) (*models.WizardSession, error)
	SetSchedule(sessionID, date, slot string) (*models.WizardSession, error)
	SetContactField(sessionID, field, value string) (*models.WizardSession, error)
	SetPaymentMethod(sessionID, method string) (*models.WizardSession, error)
	Advance(sessionID string) (*AdvanceResult, error)
	Retreat(sessionID string) (*models.WizardSession, error)
	Submit(sessionID string) (*models.BookingConfirmation, error)
	CancelSession(sessionID string) error
}

// DefaultSessionService implements SessionService on top of Redis-backed
// session storage.
type DefaultSessionService struct {
	Catalog     *catalog.Catalog
	Repo        bookingsRepo.Repository
	CalendarSvc calendar.Client
	Cache       *redis.Client
	SessionTTL  time.Duration
	Logger      *zap.Logger
}
