package registrations

import (
	"context"

	"github.com/apermyakov/SLM-RentalService/internal/domain"
)

// RegistrationRepository интерфейс репозитория регистраций
type RegistrationRepository interface {
	GetByGuardianID(ctx context.Context, guardianUserID int64) ([]*domain.EventRegistration, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
