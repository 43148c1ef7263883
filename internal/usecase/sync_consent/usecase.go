package sync_consent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/apermyakov/SLM-RentalService/internal/domain"
	signClient "github.com/apermyakov/SLM-RentalService/internal/integrations/signservice"
)

// UseCase use case синхронизации статуса согласия регистраций
// после завершения подписи документа опекуном
type UseCase struct {
	registrationRepo RegistrationRepository
	signClient       SignServiceClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	registrationRepo RegistrationRepository,
	signClient SignServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		registrationRepo: registrationRepo,
		signClient:       signClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет синхронизацию согласий по запросу подписи
//
// Один подписанный документ может покрывать несколько регистраций,
// поэтому обновление выполняется в сериализуемой транзакции с блокировкой
// строк: два конкурентных вебхука не разъедутся по статусам.
// Повторный вызов для уже синхронизированного запроса безопасен:
// регистрации в финальном статусе пропускаются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SyncConsent: request_id=%s", req.RequestID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SyncConsent: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем состояние запроса подписи из SignService
	signatureRequest, err := uc.signClient.GetSignatureRequestWithGracefulDegradation(ctx, req.RequestID)
	if err != nil {
		switch {
		case errors.Is(err, signClient.ErrRequestNotFound):
			uc.logger.Warn("SyncConsent: signature request id=%s not found", req.RequestID)
			return nil, ErrRequestNotFound
		case errors.Is(err, signClient.ErrServiceDegraded):
			uc.logger.Error("SyncConsent: sign service degraded for request id=%s", req.RequestID)
			return nil, ErrServiceUnavailable
		default:
			uc.logger.Error("SyncConsent: failed to get signature request id=%s: %v", req.RequestID, err)
			return nil, fmt.Errorf("%w: failed to get signature request: %v", ErrInternal, err)
		}
	}

	// 3. Определяем целевой статус согласия
	targetStatus, final := consentStatusFor(signatureRequest)
	if !final {
		// Документ еще не подписан - синхронизировать нечего
		uc.logger.Info("SyncConsent: request id=%s still %s, nothing to sync",
			req.RequestID, signatureRequest.Status)
		return &Response{
			RequestID:       req.RequestID,
			SignatureStatus: signatureRequest.Status,
			ConsentStatus:   string(domain.ConsentPending),
		}, nil
	}

	signedAt := uc.signedAtFor(signatureRequest, targetStatus)

	// 4. Обновляем регистрации в сериализуемой транзакции
	var updated, skipped int
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		registrations, err := uc.registrationRepo.GetByConsentRequestID(txCtx, req.RequestID)
		if err != nil {
			return fmt.Errorf("%w: failed to load registrations: %v", ErrInternal, err)
		}

		if len(registrations) == 0 {
			return ErrNoRegistrations
		}

		updated, skipped = 0, 0
		for _, reg := range registrations {
			// Идемпотентность: финальные статусы не трогаем
			if reg.IsConsentResolved() {
				skipped++
				continue
			}

			if err := uc.registrationRepo.UpdateConsentStatus(txCtx, reg.ID, targetStatus, signedAt); err != nil {
				return fmt.Errorf("%w: failed to update registration id=%d: %v", ErrInternal, reg.ID, err)
			}
			updated++
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrNoRegistrations) {
			uc.logger.Warn("SyncConsent: no registrations linked to request id=%s", req.RequestID)
			return nil, ErrNoRegistrations
		}
		uc.logger.Error("SyncConsent: transaction failed for request id=%s: %v", req.RequestID, err)
		return nil, err
	}

	uc.logger.Info("SyncConsent: request id=%s synced, status=%s, updated=%d, skipped=%d",
		req.RequestID, targetStatus, updated, skipped)

	return &Response{
		RequestID:       req.RequestID,
		SignatureStatus: signatureRequest.Status,
		ConsentStatus:   string(targetStatus),
		UpdatedCount:    updated,
		SkippedCount:    skipped,
	}, nil
}

// consentStatusFor маппит статус запроса подписи в статус согласия
// final=false означает, что решение еще не принято
func consentStatusFor(req *signClient.SignatureRequest) (domain.ConsentStatus, bool) {
	switch {
	case req.IsSigned():
		return domain.ConsentGranted, true
	case req.IsDeclined():
		return domain.ConsentDeclined, true
	default:
		return domain.ConsentPending, false
	}
}

// signedAtFor возвращает момент подписания для статуса granted
// Берем CompletedAt провайдера, при его отсутствии - текущее время
func (uc *UseCase) signedAtFor(req *signClient.SignatureRequest, status domain.ConsentStatus) *time.Time {
	if status != domain.ConsentGranted {
		return nil
	}
	if req.CompletedAt != nil {
		return req.CompletedAt
	}
	now := uc.timeProvider.Now()
	return &now
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.RequestID) == "" {
		return fmt.Errorf("%w: requestID is required", ErrInvalidInput)
	}
	return nil
}
