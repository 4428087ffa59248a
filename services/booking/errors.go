package booking

import "errors"

var (
	// ErrSessionNotFound indicates a missing or expired wizard session.
	ErrSessionNotFound = errors.New("booking session not found or expired")

	// ErrUnknownService indicates a service ID that is not in the catalog.
	// The draft's selection is left unset when this is returned.
	ErrUnknownService = errors.New("unknown service")

	// ErrUnknownPackage indicates a package name the selected service does not offer.
	ErrUnknownPackage = errors.New("unknown package for selected service")

	// ErrNoServiceSelected indicates a package selection before any service was chosen.
	ErrNoServiceSelected = errors.New("no service selected")

	// ErrInvalidPaymentMethod indicates a payment method outside the accepted set.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrUnknownContactField indicates a contact field name the draft does not have.
	ErrUnknownContactField = errors.New("unknown contact field")

	// ErrDraftIncomplete indicates a submit attempt with stage predicates unsatisfied.
	ErrDraftIncomplete = errors.New("booking draft incomplete")

	// ErrAlreadySubmitted guards against duplicate submission of the same session.
	ErrAlreadySubmitted = errors.New("booking session already submitted")
)
