package discover_rentals

import (
	"errors"
	"net/http"

	"github.com/apermyakov/SLM-RentalService/internal/api/handlers"
	"github.com/apermyakov/SLM-RentalService/internal/api/middleware"
	discoverRentals "github.com/apermyakov/SLM-RentalService/internal/usecase/discover_rentals"
)

const (
	msgInvalidQuery   = "некорректные параметры запроса"
	msgInvalidFilters = "некорректные параметры фильтров"
)

type Handler struct {
	useCase DiscoverRentalsUseCase
	logger  Logger
}

func NewHandler(useCase DiscoverRentalsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rentals/discover
// Query params (все опциональны): sports, fieldTypes (comma-separated),
// timeStart, timeEnd (часы, можно дробные), maxDistance (км), q, lat, lng
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Роут публичный, но если gateway проставил пользователя - логируем его
	var userID *int64
	if id, ok := middleware.GetUserID(r.Context()); ok {
		userID = &id
	}

	useCaseReq, err := ToUseCaseRequest(r.URL.Query(), userID)
	if err != nil {
		h.logger.Warn("GET /rentals/discover - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, discoverRentals.ErrInvalidInput):
			h.logger.Warn("GET /rentals/discover - Invalid filters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilters)

		default:
			h.logger.Error("GET /rentals/discover - Failed to discover rentals: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /rentals/discover - Listings retrieved successfully: groups=%d, listings=%d",
		len(response.Organizations), response.TotalListings)
	handlers.RespondJSON(w, http.StatusOK, response)
}
