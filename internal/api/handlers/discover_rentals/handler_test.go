package discover_rentals

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apermyakov/SLM-RentalService/internal/domain"
	discoverRentals "github.com/apermyakov/SLM-RentalService/internal/usecase/discover_rentals"
	"github.com/apermyakov/SLM-RentalService/pkg/ptr"
)

type stubUseCase struct {
	gotReq *discoverRentals.Request
	resp   *discoverRentals.Response
	err    error
}

func (uc *stubUseCase) Execute(ctx context.Context, req *discoverRentals.Request) (*discoverRentals.Response, error) {
	uc.gotReq = req
	return uc.resp, uc.err
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	org := &domain.Organization{ID: 1, Name: "Арена Север", Location: "Москва", Sports: []string{"football"}}
	field := &domain.Field{ID: 10, Name: "Главное поле", Type: "football"}
	slot := &domain.TimeSlot{ID: 100, Repeating: true, PricePerHour: ptr.Ptr(1500.0)}
	occurrence := time.Date(2024, time.January, 3, 18, 0, 0, 0, time.UTC)

	okResponse := &discoverRentals.Response{
		Groups: []discoverRentals.Group{
			{
				Organization: org,
				Listings: []domain.RentalListing{
					{
						Organization:   org,
						Field:          field,
						Slot:           slot,
						NextOccurrence: occurrence,
						DistanceKm:     ptr.Ptr(3.2),
					},
				},
			},
		},
		TotalListings: 1,
	}

	t.Run("returns grouped listings", func(t *testing.T) {
		uc := &stubUseCase{resp: okResponse}
		h := NewHandler(uc, noopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/rentals/discover?sports=football&lat=55.75&lng=37.61", nil)
		rec := httptest.NewRecorder()

		h.Handle(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body DiscoverResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		require.Len(t, body.Organizations, 1)
		assert.Equal(t, "Арена Север", body.Organizations[0].Name)
		assert.Equal(t, 1, body.Organizations[0].ListingCount)
		assert.Equal(t, "18:00", body.Organizations[0].Listings[0].StartTime)
		assert.Equal(t, 1, body.TotalListings)

		// Query параметры доезжают до use case
		require.NotNil(t, uc.gotReq)
		assert.Equal(t, []string{"football"}, uc.gotReq.Sports)
		require.NotNil(t, uc.gotReq.Viewer)
		assert.Equal(t, 55.75, uc.gotReq.Viewer.Latitude)
	})

	t.Run("lat without lng is a bad request", func(t *testing.T) {
		h := NewHandler(&stubUseCase{resp: okResponse}, noopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/rentals/discover?lat=55.75", nil)
		rec := httptest.NewRecorder()

		h.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unparsable float is a bad request", func(t *testing.T) {
		h := NewHandler(&stubUseCase{resp: okResponse}, noopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/rentals/discover?maxDistance=close", nil)
		rec := httptest.NewRecorder()

		h.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid filters map to bad request", func(t *testing.T) {
		h := NewHandler(&stubUseCase{err: discoverRentals.ErrInvalidInput}, noopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/rentals/discover?timeStart=9&timeEnd=8", nil)
		rec := httptest.NewRecorder()

		h.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		h := NewHandler(&stubUseCase{err: discoverRentals.ErrInternal}, noopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/rentals/discover", nil)
		rec := httptest.NewRecorder()

		h.Handle(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
