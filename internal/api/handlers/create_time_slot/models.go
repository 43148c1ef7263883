package create_time_slot

import (
	"github.com/apermyakov/SLM-RentalService/internal/service/organizations/models"
)

// CreateTimeSlotRequest HTTP request model
type CreateTimeSlotRequest struct {
	DayOfWeek        int      `json:"dayOfWeek"`
	StartDate        string   `json:"startDate"` // "2024-01-02T18:00:00" (локальное время)
	EndDate          *string  `json:"endDate,omitempty"`
	Repeating        bool     `json:"repeating"`
	StartTimeMinutes *int     `json:"startTimeMinutes,omitempty"`
	EndTimeMinutes   *int     `json:"endTimeMinutes,omitempty"`
	PricePerHour     *float64 `json:"pricePerHour,omitempty"`
}

// TimeSlotResponse HTTP response model
type TimeSlotResponse struct {
	ID           int64    `json:"id"`
	FieldID      int64    `json:"fieldId"`
	DayOfWeek    int      `json:"dayOfWeek"`
	StartDate    string   `json:"startDate"`
	EndDate      *string  `json:"endDate,omitempty"`
	Repeating    bool     `json:"repeating"`
	StartTime    *string  `json:"startTime,omitempty"`
	EndTime      *string  `json:"endTime,omitempty"`
	PricePerHour *float64 `json:"pricePerHour,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateTimeSlotRequest) ToServiceRequest(orgID, fieldID int64) *models.CreateTimeSlotRequest {
	return &models.CreateTimeSlotRequest{
		OrganizationID:   orgID,
		FieldID:          fieldID,
		DayOfWeek:        r.DayOfWeek,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		Repeating:        r.Repeating,
		StartTimeMinutes: r.StartTimeMinutes,
		EndTimeMinutes:   r.EndTimeMinutes,
		PricePerHour:     r.PricePerHour,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.TimeSlotResponse) *TimeSlotResponse {
	return &TimeSlotResponse{
		ID:           resp.ID,
		FieldID:      resp.FieldID,
		DayOfWeek:    resp.DayOfWeek,
		StartDate:    resp.StartDate,
		EndDate:      resp.EndDate,
		Repeating:    resp.Repeating,
		StartTime:    resp.StartTime,
		EndTime:      resp.EndTime,
		PricePerHour: resp.Price,
	}
}
