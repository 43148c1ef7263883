package create_time_slot

import (
	"context"

	"github.com/apermyakov/SLM-RentalService/internal/service/organizations/models"
)

type OrganizationService interface {
	CreateTimeSlot(ctx context.Context, req *models.CreateTimeSlotRequest) (*models.TimeSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
