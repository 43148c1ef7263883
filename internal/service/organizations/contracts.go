package organizations

import (
	"context"

	"github.com/apermyakov/SLM-RentalService/internal/domain"
)

// OrganizationRepository интерфейс репозитория организаций
type OrganizationRepository interface {
	ListWithSchedules(ctx context.Context) ([]*domain.Organization, error)
	GetByID(ctx context.Context, id int64) (*domain.Organization, error)
	GetFieldByID(ctx context.Context, fieldID int64) (*domain.Field, error)
}

// TimeSlotRepository интерфейс репозитория слотов аренды
type TimeSlotRepository interface {
	Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
