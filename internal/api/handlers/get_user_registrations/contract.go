package get_user_registrations

import (
	"context"

	"github.com/apermyakov/SLM-RentalService/internal/service/registrations/models"
)

type RegistrationService interface {
	GetGuardianRegistrations(ctx context.Context, guardianUserID, requesterID int64) (*models.RegistrationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
