package sync_consent

import (
	"context"
	"time"

	"github.com/apermyakov/SLM-RentalService/internal/domain"
	"github.com/apermyakov/SLM-RentalService/internal/integrations/signservice"
)

// RegistrationRepository интерфейс репозитория регистраций
type RegistrationRepository interface {
	// GetByConsentRequestID получает все регистрации, привязанные к запросу подписи
	// Внутри транзакции блокирует строки (FOR UPDATE)
	GetByConsentRequestID(ctx context.Context, requestID string) ([]*domain.EventRegistration, error)
	UpdateConsentStatus(ctx context.Context, id int64, status domain.ConsentStatus, signedAt *time.Time) error
}

// SignServiceClient интерфейс клиента сервиса электронной подписи
type SignServiceClient interface {
	GetSignatureRequestWithGracefulDegradation(ctx context.Context, requestID string) (*signservice.SignatureRequest, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
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
