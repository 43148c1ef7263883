package signature_completed

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/apermyakov/SLM-RentalService/internal/api/handlers"
	syncConsent "github.com/apermyakov/SLM-RentalService/internal/usecase/sync_consent"
)

const (
	msgInvalidBody        = "некорректное тело запроса"
	msgInvalidRequestID   = "некорректный ID запроса подписи"
	msgRequestNotFound    = "запрос подписи не найден"
	msgNoRegistrations    = "к запросу подписи не привязаны регистрации"
	msgServiceUnavailable = "сервис подписей временно недоступен, повторите позже"
)

type Handler struct {
	useCase SyncConsentUseCase
	logger  Logger
}

func NewHandler(useCase SyncConsentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/webhooks/signature-completed
// Вызывается сервисом подписей после завершения подписания документа
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /webhooks/signature-completed - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, syncConsent.ErrInvalidInput):
			h.logger.Warn("POST /webhooks/signature-completed - Invalid request ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestID)

		case errors.Is(err, syncConsent.ErrRequestNotFound):
			h.logger.Warn("POST /webhooks/signature-completed - Signature request not found: request_id=%s", req.RequestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, syncConsent.ErrNoRegistrations):
			h.logger.Warn("POST /webhooks/signature-completed - No registrations: request_id=%s", req.RequestID)
			handlers.RespondNotFound(w, msgNoRegistrations)

		case errors.Is(err, syncConsent.ErrServiceUnavailable):
			h.logger.Error("POST /webhooks/signature-completed - Sign service unavailable: request_id=%s", req.RequestID)
			handlers.RespondServiceUnavailable(w, msgServiceUnavailable)

		default:
			h.logger.Error("POST /webhooks/signature-completed - Failed to sync consent: request_id=%s, error=%v",
				req.RequestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /webhooks/signature-completed - Consent synced: request_id=%s, status=%s, updated=%d",
		result.RequestID, result.ConsentStatus, result.UpdatedCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
