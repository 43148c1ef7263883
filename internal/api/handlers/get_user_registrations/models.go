package get_user_registrations

import (
	"time"

	"github.com/apermyakov/SLM-RentalService/internal/service/registrations/models"
)

// RegistrationListResponse HTTP response model
type RegistrationListResponse struct {
	Registrations []Registration `json:"registrations"`
	Total         int            `json:"total"`
}

// Registration регистрация ребенка на событие
type Registration struct {
	ID               int64      `json:"id"`
	EventID          int64      `json:"eventId"`
	ChildUserID      int64      `json:"childUserId"`
	GuardianUserID   int64      `json:"guardianUserId"`
	ConsentStatus    string     `json:"consentStatus"`
	ConsentRequestID *string    `json:"consentRequestId,omitempty"`
	ConsentSignedAt  *time.Time `json:"consentSignedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.RegistrationListResponse) *RegistrationListResponse {
	regs := make([]Registration, len(resp.Registrations))
	for i, reg := range resp.Registrations {
		regs[i] = Registration{
			ID:               reg.ID,
			EventID:          reg.EventID,
			ChildUserID:      reg.ChildUserID,
			GuardianUserID:   reg.GuardianUserID,
			ConsentStatus:    reg.ConsentStatus,
			ConsentRequestID: reg.ConsentRequestID,
			ConsentSignedAt:  reg.ConsentSignedAt,
			CreatedAt:        reg.CreatedAt,
		}
	}
	return &RegistrationListResponse{
		Registrations: regs,
		Total:         resp.Total,
	}
}
