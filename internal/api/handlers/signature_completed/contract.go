package signature_completed

import (
	"context"

	syncConsent "github.com/apermyakov/SLM-RentalService/internal/usecase/sync_consent"
)

type SyncConsentUseCase interface {
	Execute(ctx context.Context, req *syncConsent.Request) (*syncConsent.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
