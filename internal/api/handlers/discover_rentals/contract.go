package discover_rentals

import (
	"context"

	discoverRentals "github.com/apermyakov/SLM-RentalService/internal/usecase/discover_rentals"
)

type DiscoverRentalsUseCase interface {
	Execute(ctx context.Context, req *discoverRentals.Request) (*discoverRentals.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
