package list_organizations

import (
	"net/http"

	"github.com/apermyakov/SLM-RentalService/internal/api/handlers"
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

// Handle GET /api/v1/organizations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /organizations - Failed to list organizations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromServiceResponse(result)

	h.logger.Info("GET /organizations - Organizations listed successfully: total=%d", response.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}
