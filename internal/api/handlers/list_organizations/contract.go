package list_organizations

import (
	"context"

	"github.com/apermyakov/SLM-RentalService/internal/service/organizations/models"
)

type OrganizationService interface {
	List(ctx context.Context) (*models.OrganizationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
