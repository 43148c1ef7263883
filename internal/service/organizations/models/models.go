package models

import (
	"github.com/apermyakov/SLM-RentalService/internal/domain"
	"github.com/apermyakov/SLM-RentalService/pkg/types"
)

// OrganizationResponse модель организации для вызывающего слоя
type OrganizationResponse struct {
	ID          int64
	Name        string
	Description string
	Location    string
	Sports      []string
	Latitude    *float64
	Longitude   *float64
	Fields      []FieldResponse
}

// FieldResponse модель поля организации
type FieldResponse struct {
	ID        int64
	Name      string
	Type      string
	Surface   *string
	Indoor    bool
	TimeSlots []TimeSlotResponse
}

// TimeSlotResponse модель слота аренды
type TimeSlotResponse struct {
	ID        int64
	FieldID   int64
	DayOfWeek int
	StartDate string
	EndDate   *string
	Repeating bool
	StartTime *string // "HH:MM", если задано start_time_minutes
	EndTime   *string // "HH:MM", если задано end_time_minutes
	Price     *float64
}

// OrganizationListResponse список организаций
type OrganizationListResponse struct {
	Organizations []OrganizationResponse
	Total         int
}

// CreateTimeSlotRequest запрос на создание слота аренды
type CreateTimeSlotRequest struct {
	OrganizationID   int64
	FieldID          int64
	DayOfWeek        int
	StartDate        string
	EndDate          *string
	Repeating        bool
	StartTimeMinutes *int
	EndTimeMinutes   *int
	PricePerHour     *float64
}

// FromDomainOrganization конвертирует доменную организацию в response-модель
func FromDomainOrganization(org *domain.Organization) *OrganizationResponse {
	fields := make([]FieldResponse, len(org.Fields))
	for i := range org.Fields {
		fields[i] = FromDomainField(&org.Fields[i])
	}

	return &OrganizationResponse{
		ID:          org.ID,
		Name:        org.Name,
		Description: org.Description,
		Location:    org.Location,
		Sports:      org.Sports,
		Latitude:    org.Latitude,
		Longitude:   org.Longitude,
		Fields:      fields,
	}
}

// FromDomainOrganizationList конвертирует список доменных организаций
func FromDomainOrganizationList(orgs []*domain.Organization) *OrganizationListResponse {
	result := make([]OrganizationResponse, len(orgs))
	for i, org := range orgs {
		result[i] = *FromDomainOrganization(org)
	}
	return &OrganizationListResponse{
		Organizations: result,
		Total:         len(result),
	}
}

// FromDomainField конвертирует доменное поле в response-модель
func FromDomainField(field *domain.Field) FieldResponse {
	slots := make([]TimeSlotResponse, len(field.TimeSlots))
	for i := range field.TimeSlots {
		slots[i] = *FromDomainTimeSlot(&field.TimeSlots[i])
	}

	return FieldResponse{
		ID:        field.ID,
		Name:      field.Name,
		Type:      field.Type,
		Surface:   field.Surface,
		Indoor:    field.Indoor,
		TimeSlots: slots,
	}
}

// FromDomainTimeSlot конвертирует доменный слот в response-модель
func FromDomainTimeSlot(slot *domain.TimeSlot) *TimeSlotResponse {
	return &TimeSlotResponse{
		ID:        slot.ID,
		FieldID:   slot.FieldID,
		DayOfWeek: slot.DayOfWeek,
		StartDate: slot.StartDate,
		EndDate:   slot.EndDate,
		Repeating: slot.Repeating,
		StartTime: minutesToTimeString(slot.StartTimeMinutes),
		EndTime:   minutesToTimeString(slot.EndTimeMinutes),
		Price:     slot.PricePerHour,
	}
}

// ToDomainTimeSlot конвертирует запрос создания слота в доменную модель
func (r *CreateTimeSlotRequest) ToDomainTimeSlot() *domain.TimeSlot {
	return &domain.TimeSlot{
		FieldID:          r.FieldID,
		DayOfWeek:        r.DayOfWeek,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		Repeating:        r.Repeating,
		StartTimeMinutes: r.StartTimeMinutes,
		EndTimeMinutes:   r.EndTimeMinutes,
		PricePerHour:     r.PricePerHour,
	}
}

func minutesToTimeString(minutes *int) *string {
	if minutes == nil {
		return nil
	}
	ts, err := types.NewTimeStringFromMinutes(*minutes)
	if err != nil {
		// Некорректные минуты в БД - показываем слот без времени
		return nil
	}
	s := ts.String()
	return &s
}
