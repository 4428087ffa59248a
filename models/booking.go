package models

import "time"

// Booking statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is a known booking status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Booking represents a finalized booking record. Immutable once created,
// except through admin management.
type Booking struct {
	ID            string    `json:"id"`
	ServiceID     string    `json:"serviceId"`
	ServiceName   string    `json:"service"`
	PackageName   string    `json:"packageName"`
	Date          string    `json:"date"` // "YYYY-MM-DD"
	Time          string    `json:"time"` // e.g. "10:00 AM"
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Notes         string    `json:"notes,omitempty"`
	PaymentMethod string    `json:"paymentMethod"`
	Deposit       int       `json:"deposit"` // half the package price, whole currency units
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`

	// Set only if the simulated calendar sync completes.
	CalendarEventID string `json:"googleCalendarEventId,omitempty"`
}

// BookingConfirmation is the human-readable summary returned on submission.
type BookingConfirmation struct {
	BookingID string `json:"bookingId"`
	Service   string `json:"service"`
	Package   string `json:"package"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Deposit   int    `json:"deposit"`
	Status    string `json:"status"`
}
