package discover_rentals

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/apermyakov/SLM-RentalService/internal/domain"
	discoverRentals "github.com/apermyakov/SLM-RentalService/internal/usecase/discover_rentals"
	"github.com/apermyakov/SLM-RentalService/pkg/types"
)

// DiscoverResponse HTTP response model
type DiscoverResponse struct {
	Organizations []OrganizationGroup `json:"organizations"`
	TotalListings int                 `json:"totalListings"`
}

// OrganizationGroup группа листингов одной организации
type OrganizationGroup struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	Sports       []string  `json:"sports"`
	ListingCount int       `json:"listingCount"`
	Listings     []Listing `json:"listings"`
}

// Listing модель листинга аренды
type Listing struct {
	FieldID        int64    `json:"fieldId"`
	FieldName      string   `json:"fieldName"`
	FieldType      string   `json:"fieldType"`
	SlotID         int64    `json:"slotId"`
	Repeating      bool     `json:"repeating"`
	NextOccurrence string   `json:"nextOccurrence"` // RFC3339
	StartTime      string   `json:"startTime"`      // "HH:MM" локальное время вхождения
	DistanceKm     *float64 `json:"distanceKm,omitempty"`
	PricePerHour   *float64 `json:"pricePerHour,omitempty"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(query url.Values, userID *int64) (*discoverRentals.Request, error) {
	req := &discoverRentals.Request{
		UserID:     userID,
		Sports:     splitCSV(query.Get("sports")),
		FieldTypes: splitCSV(query.Get("fieldTypes")),
		Query:      query.Get("q"),
	}

	var err error
	if req.TimeStartHour, err = parseOptionalFloat(query, "timeStart"); err != nil {
		return nil, err
	}
	if req.TimeEndHour, err = parseOptionalFloat(query, "timeEnd"); err != nil {
		return nil, err
	}
	if req.MaxDistanceKm, err = parseOptionalFloat(query, "maxDistance"); err != nil {
		return nil, err
	}

	lat, err := parseOptionalFloat(query, "lat")
	if err != nil {
		return nil, err
	}
	lng, err := parseOptionalFloat(query, "lng")
	if err != nil {
		return nil, err
	}
	if (lat == nil) != (lng == nil) {
		return nil, fmt.Errorf("lat and lng must be provided together")
	}
	if lat != nil {
		req.Viewer = &domain.GeoPoint{Latitude: *lat, Longitude: *lng}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *discoverRentals.Response) *DiscoverResponse {
	groups := make([]OrganizationGroup, len(resp.Groups))
	for i, group := range resp.Groups {
		listings := make([]Listing, len(group.Listings))
		for j := range group.Listings {
			listings[j] = fromDomainListing(&group.Listings[j])
		}

		groups[i] = OrganizationGroup{
			ID:           group.Organization.ID,
			Name:         group.Organization.Name,
			Location:     group.Organization.Location,
			Sports:       group.Organization.Sports,
			ListingCount: len(listings),
			Listings:     listings,
		}
	}

	return &DiscoverResponse{
		Organizations: groups,
		TotalListings: resp.TotalListings,
	}
}

func fromDomainListing(listing *domain.RentalListing) Listing {
	return Listing{
		FieldID:        listing.Field.ID,
		FieldName:      listing.Field.Name,
		FieldType:      listing.Field.Type,
		SlotID:         listing.Slot.ID,
		Repeating:      listing.Slot.Repeating,
		NextOccurrence: listing.NextOccurrence.Format(time.RFC3339),
		StartTime:      types.NewTimeString(listing.NextOccurrence).String(),
		DistanceKm:     listing.DistanceKm,
		PricePerHour:   listing.Slot.PricePerHour,
	}
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func parseOptionalFloat(query url.Values, key string) (*float64, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %v", key, err)
	}
	return &value, nil
}
