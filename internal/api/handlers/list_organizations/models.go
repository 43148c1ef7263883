package list_organizations

import (
	"github.com/apermyakov/SLM-RentalService/internal/service/organizations/models"
)

// OrganizationListResponse HTTP response model
type OrganizationListResponse struct {
	Organizations []Organization `json:"organizations"`
	Total         int            `json:"total"`
}

// Organization модель организации в списке
type Organization struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Sports      []string `json:"sports"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	FieldCount  int      `json:"fieldCount"`
	SlotCount   int      `json:"slotCount"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.OrganizationListResponse) *OrganizationListResponse {
	orgs := make([]Organization, len(resp.Organizations))
	for i := range resp.Organizations {
		org := &resp.Organizations[i]

		slotCount := 0
		for j := range org.Fields {
			slotCount += len(org.Fields[j].TimeSlots)
		}

		orgs[i] = Organization{
			ID:          org.ID,
			Name:        org.Name,
			Description: org.Description,
			Location:    org.Location,
			Sports:      org.Sports,
			Latitude:    org.Latitude,
			Longitude:   org.Longitude,
			FieldCount:  len(org.Fields),
			SlotCount:   slotCount,
		}
	}

	return &OrganizationListResponse{
		Organizations: orgs,
		Total:         resp.Total,
	}
}
