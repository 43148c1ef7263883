package organizations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apermyakov/SLM-RentalService/internal/domain"
	orgRepo "github.com/apermyakov/SLM-RentalService/internal/infra/storage/organization"
	slotRepo "github.com/apermyakov/SLM-RentalService/internal/infra/storage/timeslot"
	"github.com/apermyakov/SLM-RentalService/internal/service/organizations/models"
	"github.com/apermyakov/SLM-RentalService/pkg/ptr"
)

type stubOrgRepo struct {
	orgs     []*domain.Organization
	org      *domain.Organization
	field    *domain.Field
	listErr  error
	getErr   error
	fieldErr error
}

func (r *stubOrgRepo) ListWithSchedules(ctx context.Context) ([]*domain.Organization, error) {
	return r.orgs, r.listErr
}

func (r *stubOrgRepo) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	return r.org, r.getErr
}

func (r *stubOrgRepo) GetFieldByID(ctx context.Context, id int64) (*domain.Field, error) {
	return r.field, r.fieldErr
}

type stubSlotRepo struct {
	created   *domain.TimeSlot
	createErr error
	deleteErr error
}

func (r *stubSlotRepo) Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.created = slot
	return slot, nil
}

func (r *stubSlotRepo) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	return nil, slotRepo.ErrTimeSlotNotFound
}

func (r *stubSlotRepo) Delete(ctx context.Context, id int64) error {
	return r.deleteErr
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func validCreateRequest() *models.CreateTimeSlotRequest {
	return &models.CreateTimeSlotRequest{
		OrganizationID:   1,
		FieldID:          10,
		DayOfWeek:        3,
		StartDate:        "2024-01-10T00:00:00",
		Repeating:        true,
		StartTimeMinutes: ptr.Ptr(18 * 60),
		EndTimeMinutes:   ptr.Ptr(20 * 60),
		PricePerHour:     ptr.Ptr(1500.0),
	}
}

func TestService_CreateTimeSlot(t *testing.T) {
	t.Run("creates slot for own field", func(t *testing.T) {
		slots := &stubSlotRepo{}
		svc := NewService(&stubOrgRepo{field: &domain.Field{ID: 10, OrganizationID: 1}}, slots, noopLogger{})

		resp, err := svc.CreateTimeSlot(context.Background(), validCreateRequest())

		require.NoError(t, err)
		require.NotNil(t, resp)
		require.NotNil(t, slots.created)
		assert.Equal(t, int64(10), slots.created.FieldID)
		assert.True(t, slots.created.Repeating)
	})

	t.Run("field of another organization is rejected", func(t *testing.T) {
		svc := NewService(&stubOrgRepo{field: &domain.Field{ID: 10, OrganizationID: 99}}, &stubSlotRepo{}, noopLogger{})

		_, err := svc.CreateTimeSlot(context.Background(), validCreateRequest())

		assert.ErrorIs(t, err, ErrFieldNotInOrganization)
	})

	t.Run("missing field", func(t *testing.T) {
		svc := NewService(&stubOrgRepo{fieldErr: orgRepo.ErrFieldNotFound}, &stubSlotRepo{}, noopLogger{})

		_, err := svc.CreateTimeSlot(context.Background(), validCreateRequest())

		assert.ErrorIs(t, err, ErrFieldNotFound)
	})

	t.Run("repository failure maps to internal", func(t *testing.T) {
		svc := NewService(
			&stubOrgRepo{field: &domain.Field{ID: 10, OrganizationID: 1}},
			&stubSlotRepo{createErr: errors.New("connection reset")},
			noopLogger{},
		)

		_, err := svc.CreateTimeSlot(context.Background(), validCreateRequest())

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestValidateCreateTimeSlot(t *testing.T) {
	modify := func(fn func(req *models.CreateTimeSlotRequest)) *models.CreateTimeSlotRequest {
		req := validCreateRequest()
		fn(req)
		return req
	}

	tests := []struct {
		name    string
		req     *models.CreateTimeSlotRequest
		wantErr bool
	}{
		{"valid repeating slot", validCreateRequest(), false},
		{
			"valid one-off slot ignores day of week",
			modify(func(r *models.CreateTimeSlotRequest) {
				r.Repeating = false
				r.DayOfWeek = 42
			}),
			false,
		},
		{
			"repeating slot with day of week out of range",
			modify(func(r *models.CreateTimeSlotRequest) { r.DayOfWeek = 7 }),
			true,
		},
		{
			"unparsable start date",
			modify(func(r *models.CreateTimeSlotRequest) { r.StartDate = "tomorrow" }),
			true,
		},
		{
			"end date before start date",
			modify(func(r *models.CreateTimeSlotRequest) { r.EndDate = ptr.Ptr("2023-12-01T00:00:00") }),
			true,
		},
		{
			"end date equal to start date is allowed",
			modify(func(r *models.CreateTimeSlotRequest) { r.EndDate = ptr.Ptr("2024-01-10T00:00:00") }),
			false,
		},
		{
			"unparsable end date",
			modify(func(r *models.CreateTimeSlotRequest) { r.EndDate = ptr.Ptr("never") }),
			true,
		},
		{
			"start time minutes out of range",
			modify(func(r *models.CreateTimeSlotRequest) { r.StartTimeMinutes = ptr.Ptr(domain.MinutesPerDay) }),
			true,
		},
		{
			"end time not after start time",
			modify(func(r *models.CreateTimeSlotRequest) { r.EndTimeMinutes = r.StartTimeMinutes }),
			true,
		},
		{
			"negative price",
			modify(func(r *models.CreateTimeSlotRequest) { r.PricePerHour = ptr.Ptr(-10.0) }),
			true,
		},
		{
			"non-positive field id",
			modify(func(r *models.CreateTimeSlotRequest) { r.FieldID = 0 }),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCreateTimeSlot(tt.req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_DeleteTimeSlot(t *testing.T) {
	t.Run("missing slot", func(t *testing.T) {
		svc := NewService(&stubOrgRepo{}, &stubSlotRepo{deleteErr: slotRepo.ErrTimeSlotNotFound}, noopLogger{})

		err := svc.DeleteTimeSlot(context.Background(), 5)

		assert.ErrorIs(t, err, ErrTimeSlotNotFound)
	})

	t.Run("successful delete", func(t *testing.T) {
		svc := NewService(&stubOrgRepo{}, &stubSlotRepo{}, noopLogger{})

		err := svc.DeleteTimeSlot(context.Background(), 5)

		assert.NoError(t, err)
	})
}
