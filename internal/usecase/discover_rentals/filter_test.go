package discover_rentals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apermyakov/SLM-RentalService/internal/domain"
	"github.com/apermyakov/SLM-RentalService/pkg/ptr"
)

func makeListing(org *domain.Organization, field *domain.Field, occurrence time.Time, distanceKm *float64) domain.RentalListing {
	return domain.RentalListing{
		Organization:   org,
		Field:          field,
		Slot:           &domain.TimeSlot{},
		NextOccurrence: occurrence,
		DistanceKm:     distanceKm,
	}
}

func TestApplyFilters_FieldType(t *testing.T) {
	org := &domain.Organization{ID: 1, Name: "Спартак"}
	grass := makeListing(org, &domain.Field{Name: "Поле 1", Type: "football"}, reference, nil)
	court := makeListing(org, &domain.Field{Name: "Корт 1", Type: "tennis"}, reference, nil)

	listings := []domain.RentalListing{grass, court}

	t.Run("empty set passes all", func(t *testing.T) {
		got := applyFilters(listings, filterOptions{})
		assert.Len(t, got, 2)
	})

	t.Run("single type keeps exact matches", func(t *testing.T) {
		got := applyFilters(listings, filterOptions{
			fieldTypes: map[string]struct{}{"football": {}},
		})
		require.Len(t, got, 1)
		assert.Equal(t, "football", got[0].Field.Type)
	})

	t.Run("unknown type filters everything out", func(t *testing.T) {
		got := applyFilters(listings, filterOptions{
			fieldTypes: map[string]struct{}{"hockey": {}},
		})
		assert.Empty(t, got)
	})
}

func TestApplyFilters_Sports(t *testing.T) {
	football := &domain.Organization{ID: 1, Sports: []string{"Football", "Basketball"}}
	tennis := &domain.Organization{ID: 2, Sports: []string{"Tennis"}}

	listings := []domain.RentalListing{
		makeListing(football, &domain.Field{}, reference, nil),
		makeListing(tennis, &domain.Field{}, reference, nil),
	}

	t.Run("match is case-insensitive", func(t *testing.T) {
		got := applyFilters(listings, filterOptions{sports: []string{"FOOTBALL"}})
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].Organization.ID)
	})

	t.Run("any listed sport is enough", func(t *testing.T) {
		got := applyFilters(listings, filterOptions{sports: []string{"hockey", "tennis"}})
		require.Len(t, got, 1)
		assert.Equal(t, int64(2), got[0].Organization.ID)
	})

	t.Run("empty list passes all", func(t *testing.T) {
		got := applyFilters(listings, filterOptions{sports: nil})
		assert.Len(t, got, 2)
	})
}

func TestApplyFilters_TimeRange(t *testing.T) {
	org := &domain.Organization{ID: 1}
	day := time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)

	at := func(hour, minute int) domain.RentalListing {
		return makeListing(org, &domain.Field{},
			day.Add(time.Duration(hour)*time.Hour+time.Duration(minute)*time.Minute), nil)
	}

	listings := []domain.RentalListing{at(9, 0), at(18, 0), at(18, 30), at(20, 0)}

	tests := []struct {
		name  string
		start float64
		end   float64
		want  int
	}{
		{"half-open interval excludes end", 18, 20, 2},
		{"start boundary is included", 9, 10, 1},
		{"fractional hours capture minutes", 18.25, 18.75, 1},
		{"window with no listings", 0, 8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyFilters(listings, filterOptions{
				timeStartHour: ptr.Ptr(tt.start),
				timeEndHour:   ptr.Ptr(tt.end),
			})
			assert.Len(t, got, tt.want)
		})
	}

	t.Run("missing bound disables the filter", func(t *testing.T) {
		got := applyFilters(listings, filterOptions{timeStartHour: ptr.Ptr(18.0)})
		assert.Len(t, got, 4)
	})
}

func TestApplyFilters_MaxDistance(t *testing.T) {
	org := &domain.Organization{ID: 1}
	near := makeListing(org, &domain.Field{}, reference, ptr.Ptr(2.5))
	far := makeListing(org, &domain.Field{}, reference, ptr.Ptr(12.0))
	unknown := makeListing(org, &domain.Field{}, reference, nil)

	listings := []domain.RentalListing{near, far, unknown}

	t.Run("no filter passes unknown distance", func(t *testing.T) {
		got := applyFilters(listings, filterOptions{})
		assert.Len(t, got, 3)
	})

	t.Run("filter drops listings beyond the limit and without distance", func(t *testing.T) {
		got := applyFilters(listings, filterOptions{maxDistanceKm: ptr.Ptr(5.0)})
		require.Len(t, got, 1)
		assert.Equal(t, 2.5, *got[0].DistanceKm)
	})

	t.Run("boundary distance is included", func(t *testing.T) {
		got := applyFilters(listings, filterOptions{maxDistanceKm: ptr.Ptr(12.0)})
		assert.Len(t, got, 2)
	})
}

func TestApplyFilters_Query(t *testing.T) {
	arena := &domain.Organization{
		ID:          1,
		Name:        "Арена Север",
		Description: "Крытый футбольный манеж",
		Location:    "Москва, ул. Ленина 1",
	}
	stadium := &domain.Organization{
		ID:       2,
		Name:     "Стадион Юность",
		Location: "Казань",
	}

	listings := []domain.RentalListing{
		makeListing(arena, &domain.Field{Name: "Главное поле"}, reference, nil),
		makeListing(stadium, &domain.Field{Name: "Корт А"}, reference, nil),
	}

	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{"matches organization name", "арена", []int64{1}},
		{"matches description", "манеж", []int64{1}},
		{"matches location", "казань", []int64{2}},
		{"matches field name", "корт", []int64{2}},
		{"no match", "бассейн", nil},
		{"empty query passes all", "", []int64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyFilters(listings, filterOptions{query: tt.query})

			ids := make([]int64, 0, len(got))
			for _, l := range got {
				ids = append(ids, l.Organization.ID)
			}
			if tt.want == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tt.want, ids)
			}
		})
	}
}

func TestGroupByOrganization(t *testing.T) {
	first := &domain.Organization{ID: 10, Name: "Первая"}
	second := &domain.Organization{ID: 20, Name: "Вторая"}

	listings := []domain.RentalListing{
		makeListing(first, &domain.Field{Name: "A"}, reference, nil),
		makeListing(second, &domain.Field{Name: "B"}, reference, nil),
		makeListing(first, &domain.Field{Name: "C"}, reference, nil),
	}

	groups := groupByOrganization(listings)

	require.Len(t, groups, 2)
	// Порядок первого появления сохраняется
	assert.Equal(t, int64(10), groups[0].Organization.ID)
	assert.Equal(t, int64(20), groups[1].Organization.ID)
	assert.Len(t, groups[0].Listings, 2)
	assert.Len(t, groups[1].Listings, 1)
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{"empty request is valid", Request{}, false},
		{"valid time range", Request{TimeStartHour: ptr.Ptr(9.0), TimeEndHour: ptr.Ptr(18.0)}, false},
		{"start without end", Request{TimeStartHour: ptr.Ptr(9.0)}, true},
		{"end without start", Request{TimeEndHour: ptr.Ptr(18.0)}, true},
		{"start above 24", Request{TimeStartHour: ptr.Ptr(25.0), TimeEndHour: ptr.Ptr(26.0)}, true},
		{"start equals end", Request{TimeStartHour: ptr.Ptr(9.0), TimeEndHour: ptr.Ptr(9.0)}, true},
		{"negative max distance", Request{MaxDistanceKm: ptr.Ptr(-1.0)}, true},
		{"zero max distance is valid", Request{MaxDistanceKm: ptr.Ptr(0.0)}, false},
		{"viewer with coordinates is valid", Request{Viewer: &domain.GeoPoint{Latitude: 55.75, Longitude: 37.61}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(&tt.req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
