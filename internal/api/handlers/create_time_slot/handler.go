package create_time_slot

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/apermyakov/SLM-RentalService/internal/api/handlers"
	"github.com/apermyakov/SLM-RentalService/internal/api/middleware"
	"github.com/apermyakov/SLM-RentalService/internal/service/organizations"
)

const (
	msgInvalidOrgID     = "некорректный ID организации"
	msgInvalidFieldID   = "некорректный ID поля"
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidSlot      = "некорректные параметры слота"
	msgFieldNotFound    = "поле не найдено"
	msgFieldNotInOrg    = "поле не принадлежит организации"
	msgMissingUserID    = "отсутствует ID пользователя"
)

type Handler struct {
	service OrganizationService
	logger  Logger
}

func NewHandler(service OrganizationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/organizations/{orgId}/fields/{fieldId}/time-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	orgID, err := strconv.ParseInt(vars["orgId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /organizations/{id}/fields/{id}/time-slots - Invalid organization ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrgID)
		return
	}

	fieldID, err := strconv.ParseInt(vars["fieldId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /organizations/{id}/fields/{id}/time-slots - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /organizations/{id}/fields/{id}/time-slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateTimeSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /organizations/{id}/fields/{id}/time-slots - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.CreateTimeSlot(r.Context(), req.ToServiceRequest(orgID, fieldID))
	if err != nil {
		switch {
		case errors.Is(err, organizations.ErrInvalidInput):
			h.logger.Warn("POST /organizations/{id}/fields/{id}/time-slots - Invalid slot: org_id=%d, field_id=%d, error=%v",
				orgID, fieldID, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, organizations.ErrFieldNotFound):
			h.logger.Warn("POST /organizations/{id}/fields/{id}/time-slots - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, organizations.ErrFieldNotInOrganization):
			h.logger.Warn("POST /organizations/{id}/fields/{id}/time-slots - Field not in org: org_id=%d, field_id=%d",
				orgID, fieldID)
			handlers.RespondForbidden(w, msgFieldNotInOrg)

		default:
			h.logger.Error("POST /organizations/{id}/fields/{id}/time-slots - Failed to create slot: org_id=%d, field_id=%d, error=%v",
				orgID, fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /organizations/{id}/fields/{id}/time-slots - Slot created successfully: slot_id=%d, field_id=%d, user_id=%d",
		result.ID, fieldID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
