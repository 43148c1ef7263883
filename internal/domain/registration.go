package domain

import "time"

// ConsentStatus represents the guardian-consent state of a child event registration
type ConsentStatus string

const (
	ConsentPending     ConsentStatus = "pending"
	ConsentGranted     ConsentStatus = "granted"
	ConsentDeclined    ConsentStatus = "declined"
	ConsentNotRequired ConsentStatus = "not_required"
)

// EventRegistration represents a child's registration for an event.
// Registrations that require guardian consent are linked to a signature
// request (ConsentRequestID) and stay pending until the document is signed.
type EventRegistration struct {
	ID             int64
	EventID        int64
	ChildUserID    int64
	GuardianUserID int64

	ConsentStatus    ConsentStatus
	ConsentRequestID *string // ID запроса подписи во внешнем сервисе подписей
	ConsentSignedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RequiresConsent returns true if the registration is gated on guardian consent
func (r *EventRegistration) RequiresConsent() bool {
	return r.ConsentStatus != ConsentNotRequired
}

// IsConsented returns true if consent has been granted
func (r *EventRegistration) IsConsented() bool {
	return r.ConsentStatus == ConsentGranted
}

// IsConsentResolved returns true if the consent decision is final
func (r *EventRegistration) IsConsentResolved() bool {
	return r.ConsentStatus == ConsentGranted ||
		r.ConsentStatus == ConsentDeclined ||
		r.ConsentStatus == ConsentNotRequired
}
