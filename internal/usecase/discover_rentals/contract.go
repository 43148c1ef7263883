package discover_rentals

import (
	"context"
	"time"

	"github.com/apermyakov/SLM-RentalService/internal/domain"
)

// OrganizationRepository интерфейс репозитория организаций
type OrganizationRepository interface {
	// ListWithSchedules получает все организации с вложенными полями и слотами
	ListWithSchedules(ctx context.Context) ([]*domain.Organization, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
// Резолвер вхождений всегда получает момент "сейчас" явным параметром
// и никогда не читает системные часы сам
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
