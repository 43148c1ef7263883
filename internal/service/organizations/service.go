package organizations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/apermyakov/SLM-RentalService/internal/domain"
	orgRepo "github.com/apermyakov/SLM-RentalService/internal/infra/storage/organization"
	slotRepo "github.com/apermyakov/SLM-RentalService/internal/infra/storage/timeslot"
	"github.com/apermyakov/SLM-RentalService/internal/service/organizations/models"
)

// Service сервис для работы с организациями и их слотами аренды
type Service struct {
	orgRepo  OrganizationRepository
	slotRepo TimeSlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса организаций
func NewService(
	orgRepo OrganizationRepository,
	slotRepo TimeSlotRepository,
	logger Logger,
) *Service {
	return &Service{
		orgRepo:  orgRepo,
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// List получает все организации с полями и слотами аренды
func (s *Service) List(ctx context.Context) (*models.OrganizationListResponse, error) {
	s.logger.Info("List: fetching organizations")

	orgs, err := s.orgRepo.ListWithSchedules(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d organizations", len(orgs))
	return models.FromDomainOrganizationList(orgs), nil
}

// GetByID получает организацию по ID с полным расписанием
func (s *Service) GetByID(ctx context.Context, id int64) (*models.OrganizationResponse, error) {
	s.logger.Info("GetByID: fetching organization id=%d", id)

	org, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orgRepo.ErrOrganizationNotFound) {
			s.logger.Warn("GetByID: organization id=%d not found", id)
			return nil, ErrOrganizationNotFound
		}
		s.logger.Error("GetByID: repository error for organization id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched organization id=%d", id)
	return models.FromDomainOrganization(org), nil
}

// CreateTimeSlot создает новый слот аренды для поля организации
// Проверяет принадлежность поля организации и валидирует расписание слота
func (s *Service) CreateTimeSlot(ctx context.Context, req *models.CreateTimeSlotRequest) (*models.TimeSlotResponse, error) {
	s.logger.Info("CreateTimeSlot: org=%d, field=%d, repeating=%t, startDate=%s",
		req.OrganizationID, req.FieldID, req.Repeating, req.StartDate)

	if err := validateCreateTimeSlot(req); err != nil {
		s.logger.Warn("CreateTimeSlot: validation failed: %v", err)
		return nil, err
	}

	// Проверяем, что поле существует и принадлежит организации
	field, err := s.orgRepo.GetFieldByID(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, orgRepo.ErrFieldNotFound) {
			s.logger.Warn("CreateTimeSlot: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("CreateTimeSlot: repository error for field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: CreateTimeSlot - repository error: %v", ErrInternal, err)
	}

	if field.OrganizationID != req.OrganizationID {
		s.logger.Warn("CreateTimeSlot: field id=%d belongs to org=%d, not org=%d",
			req.FieldID, field.OrganizationID, req.OrganizationID)
		return nil, ErrFieldNotInOrganization
	}

	slot, err := s.slotRepo.Create(ctx, req.ToDomainTimeSlot())
	if err != nil {
		s.logger.Error("CreateTimeSlot: failed to create slot for field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: CreateTimeSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTimeSlot: successfully created slot id=%d for field id=%d", slot.ID, req.FieldID)
	return models.FromDomainTimeSlot(slot), nil
}

// DeleteTimeSlot удаляет слот аренды
func (s *Service) DeleteTimeSlot(ctx context.Context, slotID int64) error {
	s.logger.Info("DeleteTimeSlot: deleting slot id=%d", slotID)

	if err := s.slotRepo.Delete(ctx, slotID); err != nil {
		if errors.Is(err, slotRepo.ErrTimeSlotNotFound) {
			s.logger.Warn("DeleteTimeSlot: slot id=%d not found", slotID)
			return ErrTimeSlotNotFound
		}
		s.logger.Error("DeleteTimeSlot: repository error for slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: DeleteTimeSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteTimeSlot: successfully deleted slot id=%d", slotID)
	return nil
}

// validateCreateTimeSlot валидирует запрос создания слота
// Граничные случаи (endDate < startDate, отрицательные минуты) отклоняются
// здесь, на границе записи - резолвер по чтению остаётся снисходительным
func validateCreateTimeSlot(req *models.CreateTimeSlotRequest) error {
	if req.OrganizationID <= 0 {
		return fmt.Errorf("%w: organizationID must be positive", ErrInvalidInput)
	}
	if req.FieldID <= 0 {
		return fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
	}

	if req.Repeating {
		if req.DayOfWeek < domain.MinDayOfWeek || req.DayOfWeek > domain.MaxDayOfWeek {
			return fmt.Errorf("%w: dayOfWeek must be between %d and %d",
				ErrInvalidInput, domain.MinDayOfWeek, domain.MaxDayOfWeek)
		}
	}

	startDate, err := parseSlotDateTime(req.StartDate)
	if err != nil {
		return fmt.Errorf("%w: startDate is not a valid date-time: %v", ErrInvalidInput, err)
	}

	if req.EndDate != nil && *req.EndDate != "" {
		endDate, err := parseSlotDateTime(*req.EndDate)
		if err != nil {
			return fmt.Errorf("%w: endDate is not a valid date-time: %v", ErrInvalidInput, err)
		}
		if endDate.Before(startDate) {
			return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
		}
	}

	if req.StartTimeMinutes != nil {
		if *req.StartTimeMinutes < 0 || *req.StartTimeMinutes >= domain.MinutesPerDay {
			return fmt.Errorf("%w: startTimeMinutes out of range", ErrInvalidInput)
		}
	}
	if req.EndTimeMinutes != nil {
		if *req.EndTimeMinutes <= 0 || *req.EndTimeMinutes > domain.MinutesPerDay {
			return fmt.Errorf("%w: endTimeMinutes out of range", ErrInvalidInput)
		}
	}
	if req.StartTimeMinutes != nil && req.EndTimeMinutes != nil && *req.EndTimeMinutes <= *req.StartTimeMinutes {
		return fmt.Errorf("%w: endTimeMinutes must be greater than startTimeMinutes", ErrInvalidInput)
	}

	if req.PricePerHour != nil && *req.PricePerHour < 0 {
		return fmt.Errorf("%w: pricePerHour must not be negative", ErrInvalidInput)
	}

	return nil
}

// parseSlotDateTime парсит "голую" локальную date-time строку слота
func parseSlotDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(domain.SlotDateTimeFormat, s); err == nil {
		return t, nil
	}
	return time.Parse(domain.SlotDateTimeShortFormat, s)
}
