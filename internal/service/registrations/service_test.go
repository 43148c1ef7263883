package registrations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apermyakov/SLM-RentalService/internal/domain"
)

type stubRegistrationRepo struct {
	registrations []*domain.EventRegistration
	err           error
}

func (r *stubRegistrationRepo) GetByGuardianID(ctx context.Context, guardianUserID int64) ([]*domain.EventRegistration, error) {
	return r.registrations, r.err
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestService_GetGuardianRegistrations(t *testing.T) {
	t.Run("guardian sees own registrations", func(t *testing.T) {
		repo := &stubRegistrationRepo{
			registrations: []*domain.EventRegistration{
				{ID: 1, GuardianUserID: 300, ConsentStatus: domain.ConsentPending},
				{ID: 2, GuardianUserID: 300, ConsentStatus: domain.ConsentGranted},
			},
		}
		svc := NewService(repo, noopLogger{})

		resp, err := svc.GetGuardianRegistrations(context.Background(), 300, 300)

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, "granted", resp.Registrations[1].ConsentStatus)
	})

	t.Run("other user is denied", func(t *testing.T) {
		svc := NewService(&stubRegistrationRepo{}, noopLogger{})

		_, err := svc.GetGuardianRegistrations(context.Background(), 300, 999)

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("non-positive guardian id", func(t *testing.T) {
		svc := NewService(&stubRegistrationRepo{}, noopLogger{})

		_, err := svc.GetGuardianRegistrations(context.Background(), 0, 0)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository failure maps to internal", func(t *testing.T) {
		svc := NewService(&stubRegistrationRepo{err: errors.New("timeout")}, noopLogger{})

		_, err := svc.GetGuardianRegistrations(context.Background(), 300, 300)

		assert.ErrorIs(t, err, ErrInternal)
	})
}
