package sync_consent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apermyakov/SLM-RentalService/internal/domain"
	"github.com/apermyakov/SLM-RentalService/internal/integrations/signservice"
	"github.com/apermyakov/SLM-RentalService/pkg/ptr"
)

type consentUpdate struct {
	id       int64
	status   domain.ConsentStatus
	signedAt *time.Time
}

type stubRegistrationRepo struct {
	registrations []*domain.EventRegistration
	getErr        error
	updateErr     error

	updates []consentUpdate
}

func (r *stubRegistrationRepo) GetByConsentRequestID(ctx context.Context, requestID string) ([]*domain.EventRegistration, error) {
	return r.registrations, r.getErr
}

func (r *stubRegistrationRepo) UpdateConsentStatus(ctx context.Context, id int64, status domain.ConsentStatus, signedAt *time.Time) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updates = append(r.updates, consentUpdate{id: id, status: status, signedAt: signedAt})
	return nil
}

type stubSignClient struct {
	request *signservice.SignatureRequest
	err     error
}

func (c *stubSignClient) GetSignatureRequestWithGracefulDegradation(ctx context.Context, requestID string) (*signservice.SignatureRequest, error) {
	return c.request, c.err
}

type stubTxManager struct {
	err error
}

func (m *stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

var testNow = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(repo *stubRegistrationRepo, client *stubSignClient) *UseCase {
	uc := NewUseCase(repo, client, &stubTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func pendingRegistration(id int64) *domain.EventRegistration {
	return &domain.EventRegistration{
		ID:               id,
		EventID:          100,
		ChildUserID:      200,
		GuardianUserID:   300,
		ConsentStatus:    domain.ConsentPending,
		ConsentRequestID: ptr.Ptr("sig-123"),
	}
}

func TestUseCase_Execute_Signed(t *testing.T) {
	completedAt := time.Date(2024, time.January, 1, 10, 30, 0, 0, time.UTC)

	repo := &stubRegistrationRepo{
		registrations: []*domain.EventRegistration{pendingRegistration(1), pendingRegistration(2)},
	}
	client := &stubSignClient{
		request: &signservice.SignatureRequest{
			ID:          "sig-123",
			Status:      signservice.StatusSigned,
			CompletedAt: &completedAt,
		},
	}

	uc := newTestUseCase(repo, client)
	resp, err := uc.Execute(context.Background(), &Request{RequestID: "sig-123"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.ConsentGranted), resp.ConsentStatus)
	assert.Equal(t, 2, resp.UpdatedCount)
	assert.Zero(t, resp.SkippedCount)

	require.Len(t, repo.updates, 2)
	for _, u := range repo.updates {
		assert.Equal(t, domain.ConsentGranted, u.status)
		require.NotNil(t, u.signedAt)
		assert.True(t, completedAt.Equal(*u.signedAt))
	}
}

func TestUseCase_Execute_SignedWithoutCompletedAt(t *testing.T) {
	repo := &stubRegistrationRepo{
		registrations: []*domain.EventRegistration{pendingRegistration(1)},
	}
	client := &stubSignClient{
		request: &signservice.SignatureRequest{ID: "sig-123", Status: signservice.StatusSigned},
	}

	uc := newTestUseCase(repo, client)
	_, err := uc.Execute(context.Background(), &Request{RequestID: "sig-123"})

	require.NoError(t, err)
	require.Len(t, repo.updates, 1)
	require.NotNil(t, repo.updates[0].signedAt)
	assert.True(t, testNow.Equal(*repo.updates[0].signedAt))
}

func TestUseCase_Execute_Declined(t *testing.T) {
	tests := []struct {
		name   string
		status string
	}{
		{"declined signature", signservice.StatusDeclined},
		{"expired signature", signservice.StatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRegistrationRepo{
				registrations: []*domain.EventRegistration{pendingRegistration(1)},
			}
			client := &stubSignClient{
				request: &signservice.SignatureRequest{ID: "sig-123", Status: tt.status},
			}

			uc := newTestUseCase(repo, client)
			resp, err := uc.Execute(context.Background(), &Request{RequestID: "sig-123"})

			require.NoError(t, err)
			assert.Equal(t, string(domain.ConsentDeclined), resp.ConsentStatus)
			require.Len(t, repo.updates, 1)
			assert.Equal(t, domain.ConsentDeclined, repo.updates[0].status)
			// Момент подписания фиксируется только для granted
			assert.Nil(t, repo.updates[0].signedAt)
		})
	}
}

func TestUseCase_Execute_PendingIsNoop(t *testing.T) {
	repo := &stubRegistrationRepo{
		registrations: []*domain.EventRegistration{pendingRegistration(1)},
	}
	client := &stubSignClient{
		request: &signservice.SignatureRequest{ID: "sig-123", Status: signservice.StatusPending},
	}

	uc := newTestUseCase(repo, client)
	resp, err := uc.Execute(context.Background(), &Request{RequestID: "sig-123"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.ConsentPending), resp.ConsentStatus)
	assert.Zero(t, resp.UpdatedCount)
	assert.Empty(t, repo.updates)
}

func TestUseCase_Execute_SkipsResolvedRegistrations(t *testing.T) {
	resolved := pendingRegistration(1)
	resolved.ConsentStatus = domain.ConsentGranted

	repo := &stubRegistrationRepo{
		registrations: []*domain.EventRegistration{resolved, pendingRegistration(2)},
	}
	client := &stubSignClient{
		request: &signservice.SignatureRequest{ID: "sig-123", Status: signservice.StatusSigned},
	}

	uc := newTestUseCase(repo, client)
	resp, err := uc.Execute(context.Background(), &Request{RequestID: "sig-123"})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.UpdatedCount)
	assert.Equal(t, 1, resp.SkippedCount)
	require.Len(t, repo.updates, 1)
	assert.Equal(t, int64(2), repo.updates[0].id)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	t.Run("blank request id", func(t *testing.T) {
		uc := newTestUseCase(&stubRegistrationRepo{}, &stubSignClient{})

		_, err := uc.Execute(context.Background(), &Request{RequestID: "   "})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("signature request not found", func(t *testing.T) {
		client := &stubSignClient{err: signservice.ErrRequestNotFound}
		uc := newTestUseCase(&stubRegistrationRepo{}, client)

		_, err := uc.Execute(context.Background(), &Request{RequestID: "sig-404"})

		assert.ErrorIs(t, err, ErrRequestNotFound)
	})

	t.Run("degraded sign service maps to unavailable", func(t *testing.T) {
		client := &stubSignClient{err: signservice.ErrServiceDegraded}
		uc := newTestUseCase(&stubRegistrationRepo{}, client)

		_, err := uc.Execute(context.Background(), &Request{RequestID: "sig-123"})

		assert.ErrorIs(t, err, ErrServiceUnavailable)
	})

	t.Run("no linked registrations", func(t *testing.T) {
		repo := &stubRegistrationRepo{}
		client := &stubSignClient{
			request: &signservice.SignatureRequest{ID: "sig-123", Status: signservice.StatusSigned},
		}

		uc := newTestUseCase(repo, client)
		_, err := uc.Execute(context.Background(), &Request{RequestID: "sig-123"})

		assert.ErrorIs(t, err, ErrNoRegistrations)
	})

	t.Run("update failure maps to internal", func(t *testing.T) {
		repo := &stubRegistrationRepo{
			registrations: []*domain.EventRegistration{pendingRegistration(1)},
			updateErr:     errors.New("deadlock"),
		}
		client := &stubSignClient{
			request: &signservice.SignatureRequest{ID: "sig-123", Status: signservice.StatusSigned},
		}

		uc := newTestUseCase(repo, client)
		_, err := uc.Execute(context.Background(), &Request{RequestID: "sig-123"})

		assert.ErrorIs(t, err, ErrInternal)
	})
}
