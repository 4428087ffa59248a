package booking

import (
	"time"

	"shotz/models"
	"shotz/services/catalog"
)

// Wizard applies booking wizard transitions to a session's draft. All methods
// are synchronous and side-effect free outside the session itself; persistence
// is the session service's concern.
type Wizard struct {
	Catalog *catalog.Catalog
	Session *models.WizardSession
}

// SelectService sets the draft's service and clears any previously selected
// package, so a stale package can never outlive a service change. An unknown
// ID returns ErrUnknownService and leaves the draft untouched.
func (w *Wizard) SelectService(serviceID string) error {
	if _, err := w.Catalog.FindByID(serviceID); err != nil {
		return ErrUnknownService
	}
	w.Session.Draft.ServiceID = serviceID
	w.Session.Draft.PackageName = ""
	return nil
}

// SelectPackage sets the draft's package. A service must already be selected,
// and the package must belong to it.
func (w *Wizard) SelectPackage(packageName string) error {
	if w.Session.Draft.ServiceID == "" {
		return ErrNoServiceSelected
	}
	if _, err := w.Catalog.FindPackage(w.Session.Draft.ServiceID, packageName); err != nil {
		return ErrUnknownPackage
	}
	w.Session.Draft.PackageName = packageName
	return nil
}

// SetDate records the requested date ("YYYY-MM-DD"). No validation happens
// here; the stage-advance check owns it.
func (w *Wizard) SetDate(date string) {
	w.Session.Draft.Date = date
}

// SetTime records the requested time slot. Validation is deferred to the
// stage-advance check.
func (w *Wizard) SetTime(slot string) {
	w.Session.Draft.Time = slot
}

// SetContactField sets one of the draft's contact fields.
func (w *Wizard) SetContactField(field, value string) error {
	switch field {
	case "name":
		w.Session.Draft.Name = value
	case "email":
		w.Session.Draft.Email = value
	case "phone":
		w.Session.Draft.Phone = value
	case "notes":
		w.Session.Draft.Notes = value
	default:
		return ErrUnknownContactField
	}
	return nil
}

// SetPaymentMethod sets the draft's payment method.
func (w *Wizard) SetPaymentMethod(method string) error {
	if !models.ValidPaymentMethod(method) {
		return ErrInvalidPaymentMethod
	}
	w.Session.Draft.PaymentMethod = method
	return nil
}

// CanAdvance reports whether the draft satisfies the completeness rule for
// the given stage. It has no side effects.
func (w *Wizard) CanAdvance(stage models.Stage) bool {
	d := &w.Session.Draft
	switch stage {
	case models.StageSelectService:
		if d.ServiceID == "" || d.PackageName == "" {
			return false
		}
		_, err := w.Catalog.FindPackage(d.ServiceID, d.PackageName)
		return err == nil
	case models.StageChooseSchedule:
		return dateOnOrAfterToday(d.Date) && models.ValidTimeSlot(d.Time)
	case models.StageEnterContact:
		return d.Name != "" && d.Email != "" && d.Phone != ""
	case models.StageSelectPayment:
		// Effectively always true: the draft starts with the default method.
		return models.ValidPaymentMethod(d.PaymentMethod)
	}
	return false
}

// MissingFields names what still blocks the given stage, for inline feedback.
func (w *Wizard) MissingFields(stage models.Stage) []string {
	d := &w.Session.Draft
	var missing []string
	switch stage {
	case models.StageSelectService:
		if d.ServiceID == "" {
			missing = append(missing, "service")
		}
		if d.PackageName == "" {
			missing = append(missing, "package")
		}
	case models.StageChooseSchedule:
		if !dateOnOrAfterToday(d.Date) {
			missing = append(missing, "date")
		}
		if !models.ValidTimeSlot(d.Time) {
			missing = append(missing, "time")
		}
	case models.StageEnterContact:
		if d.Name == "" {
			missing = append(missing, "name")
		}
		if d.Email == "" {
			missing = append(missing, "email")
		}
		if d.Phone == "" {
			missing = append(missing, "phone")
		}
	case models.StageSelectPayment:
		if !models.ValidPaymentMethod(d.PaymentMethod) {
			missing = append(missing, "paymentMethod")
		}
	}
	return missing
}

// Advance moves the session to the next stage if the current stage's
// completeness rule holds. It reports whether a transition occurred. The last
// stage does not advance here; submission handles that transition.
func (w *Wizard) Advance() bool {
	s := w.Session
	if s.Stage >= models.StageSelectPayment {
		return false
	}
	if !w.CanAdvance(s.Stage) {
		return false
	}
	s.Stage++
	return true
}

// Retreat moves the session to the previous stage, keeping all draft data.
// No-op at the first stage and once submitted.
func (w *Wizard) Retreat() bool {
	s := w.Session
	if s.Stage <= models.StageSelectService || s.Stage == models.StageSubmitted {
		return false
	}
	s.Stage--
	return true
}

// ReadyToSubmit reports whether every stage's completeness rule holds at once.
func (w *Wizard) ReadyToSubmit() bool {
	for stage := models.StageSelectService; stage <= models.StageSelectPayment; stage++ {
		if !w.CanAdvance(stage) {
			return false
		}
	}
	return true
}

func dateOnOrAfterToday(date string) bool {
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return !d.Before(today)
}
