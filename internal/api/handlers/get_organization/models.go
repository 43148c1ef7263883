package get_organization

import (
	"github.com/apermyakov/SLM-RentalService/internal/service/organizations/models"
)

// OrganizationResponse HTTP response model
type OrganizationResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Sports      []string `json:"sports"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Fields      []Field  `json:"fields"`
}

// Field модель поля с расписанием аренды
type Field struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	Surface   *string    `json:"surface,omitempty"`
	Indoor    bool       `json:"indoor"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

// TimeSlot модель слота аренды
type TimeSlot struct {
	ID           int64    `json:"id"`
	DayOfWeek    int      `json:"dayOfWeek"`
	StartDate    string   `json:"startDate"`
	EndDate      *string  `json:"endDate,omitempty"`
	Repeating    bool     `json:"repeating"`
	StartTime    *string  `json:"startTime,omitempty"` // "HH:MM"
	EndTime      *string  `json:"endTime,omitempty"`   // "HH:MM"
	PricePerHour *float64 `json:"pricePerHour,omitempty"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.OrganizationResponse) *OrganizationResponse {
	fields := make([]Field, len(resp.Fields))
	for i := range resp.Fields {
		field := &resp.Fields[i]

		slots := make([]TimeSlot, len(field.TimeSlots))
		for j := range field.TimeSlots {
			slot := &field.TimeSlots[j]
			slots[j] = TimeSlot{
				ID:           slot.ID,
				DayOfWeek:    slot.DayOfWeek,
				StartDate:    slot.StartDate,
				EndDate:      slot.EndDate,
				Repeating:    slot.Repeating,
				StartTime:    slot.StartTime,
				EndTime:      slot.EndTime,
				PricePerHour: slot.Price,
			}
		}

		fields[i] = Field{
			ID:        field.ID,
			Name:      field.Name,
			Type:      field.Type,
			Surface:   field.Surface,
			Indoor:    field.Indoor,
			TimeSlots: slots,
		}
	}

	return &OrganizationResponse{
		ID:          resp.ID,
		Name:        resp.Name,
		Description: resp.Description,
		Location:    resp.Location,
		Sports:      resp.Sports,
		Latitude:    resp.Latitude,
		Longitude:   resp.Longitude,
		Fields:      fields,
	}
}
