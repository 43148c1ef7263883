package models

import (
	"time"

	"github.com/apermyakov/SLM-RentalService/internal/domain"
)

// RegistrationResponse модель регистрации ребенка на событие
type RegistrationResponse struct {
	ID               int64
	EventID          int64
	ChildUserID      int64
	GuardianUserID   int64
	ConsentStatus    string
	ConsentRequestID *string
	ConsentSignedAt  *time.Time
	CreatedAt        time.Time
}

// RegistrationListResponse список регистраций
type RegistrationListResponse struct {
	Registrations []RegistrationResponse
	Total         int
}

// FromDomainRegistration конвертирует доменную регистрацию в response-модель
func FromDomainRegistration(reg *domain.EventRegistration) RegistrationResponse {
	return RegistrationResponse{
		ID:               reg.ID,
		EventID:          reg.EventID,
		ChildUserID:      reg.ChildUserID,
		GuardianUserID:   reg.GuardianUserID,
		ConsentStatus:    string(reg.ConsentStatus),
		ConsentRequestID: reg.ConsentRequestID,
		ConsentSignedAt:  reg.ConsentSignedAt,
		CreatedAt:        reg.CreatedAt,
	}
}

// FromDomainRegistrationList конвертирует список доменных регистраций
func FromDomainRegistrationList(regs []*domain.EventRegistration) *RegistrationListResponse {
	result := make([]RegistrationResponse, len(regs))
	for i, reg := range regs {
		result[i] = FromDomainRegistration(reg)
	}
	return &RegistrationListResponse{
		Registrations: result,
		Total:         len(result),
	}
}
