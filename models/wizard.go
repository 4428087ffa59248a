package models

import "time"

// Stage is one of the ordered phases of the booking wizard.
type Stage int

const (
	StageSelectService Stage = iota + 1
	StageChooseSchedule
	StageEnterContact
	StageSelectPayment
	StageSubmitted // terminal; a fresh session is required to book again
)

func (s Stage) String() string {
	switch s {
	case StageSelectService:
		return "select_service"
	case StageChooseSchedule:
		return "choose_schedule"
	case StageEnterContact:
		return "enter_contact"
	case StageSelectPayment:
		return "select_payment"
	case StageSubmitted:
		return "submitted"
	}
	return "unknown"
}

// Payment methods form a closed set; "card" is the default.
const (
	PaymentCard     = "card"
	PaymentPaypal   = "paypal"
	PaymentCashApp  = "cashapp"
	PaymentApplePay = "applepay"
)

// PaymentMethods lists the accepted payment methods in display order.
var PaymentMethods = []string{PaymentCard, PaymentPaypal, PaymentCashApp, PaymentApplePay}

// ValidPaymentMethod reports whether m is an accepted payment method.
func ValidPaymentMethod(m string) bool {
	for _, pm := range PaymentMethods {
		if pm == m {
			return true
		}
	}
	return false
}

// TimeSlots is the fixed set of bookable time-of-day slots.
var TimeSlots = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM",
	"5:00 PM", "6:00 PM", "7:00 PM",
}

// ValidTimeSlot reports whether t is one of the fixed time slots.
func ValidTimeSlot(t string) bool {
	for _, slot := range TimeSlots {
		if slot == t {
			return true
		}
	}
	return false
}

// BookingDraft is the in-progress, mutable booking data held by the wizard
// before finalization.
type BookingDraft struct {
	ServiceID     string `json:"serviceId"`
	PackageName   string `json:"packageName"`
	Date          string `json:"date"` // "YYYY-MM-DD"
	Time          string `json:"time"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"paymentMethod"`
}

// WizardSession holds one booking wizard's draft and stage between requests.
type WizardSession struct {
	SessionID string       `json:"sessionId"`
	Stage     Stage        `json:"stage"`
	Draft     BookingDraft `json:"draft"`
	CreatedAt time.Time    `json:"createdAt"`

	// BookingID is set once the session reaches StageSubmitted.
	BookingID string `json:"bookingId,omitempty"`
}

// NewWizardSession returns an empty session at the first stage with the
// default payment method already set.
func NewWizardSession(sessionID string) *WizardSession {
	return &WizardSession{
		SessionID: sessionID,
		Stage:     StageSelectService,
		Draft:     BookingDraft{PaymentMethod: PaymentCard},
		CreatedAt: time.Now(),
	}
}
