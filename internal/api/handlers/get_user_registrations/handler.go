package get_user_registrations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/apermyakov/SLM-RentalService/internal/api/handlers"
	"github.com/apermyakov/SLM-RentalService/internal/api/middleware"
	"github.com/apermyakov/SLM-RentalService/internal/service/registrations"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgAccessDenied  = "нет доступа к регистрациям другого пользователя"
)

type Handler struct {
	service RegistrationService
	logger  Logger
}

func NewHandler(service RegistrationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/registrations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	guardianID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/registrations - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/registrations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetGuardianRegistrations(r.Context(), guardianID, requesterID)
	if err != nil {
		switch {
		case errors.Is(err, registrations.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/registrations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidUserID)

		case errors.Is(err, registrations.ErrAccessDenied):
			h.logger.Warn("GET /users/{id}/registrations - Access denied: guardian=%d, requester=%d",
				guardianID, requesterID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /users/{id}/registrations - Failed to fetch registrations: guardian=%d, error=%v",
				guardianID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/registrations - Fetched %d registrations for guardian=%d",
		result.Total, guardianID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
