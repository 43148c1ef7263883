package get_organization

import (
	"context"

	"github.com/apermyakov/SLM-RentalService/internal/service/organizations/models"
)

type OrganizationService interface {
	GetByID(ctx context.Context, id int64) (*models.OrganizationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
