package registrations

import (
	"context"
	"fmt"

	"github.com/apermyakov/SLM-RentalService/internal/service/registrations/models"
)

// Service сервис для чтения регистраций детей на события
type Service struct {
	registrationRepo RegistrationRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса регистраций
func NewService(registrationRepo RegistrationRepository, logger Logger) *Service {
	return &Service{
		registrationRepo: registrationRepo,
		logger:           logger,
	}
}

// GetGuardianRegistrations получает регистрации детей, где пользователь является опекуном
// Пользователь может смотреть только свои регистрации (requesterID == guardianUserID)
func (s *Service) GetGuardianRegistrations(ctx context.Context, guardianUserID, requesterID int64) (*models.RegistrationListResponse, error) {
	s.logger.Info("GetGuardianRegistrations: guardian=%d, requester=%d", guardianUserID, requesterID)

	if guardianUserID <= 0 {
		return nil, fmt.Errorf("%w: guardianUserID must be positive", ErrInvalidInput)
	}

	if guardianUserID != requesterID {
		s.logger.Warn("GetGuardianRegistrations: access denied for requester=%d to guardian=%d",
			requesterID, guardianUserID)
		return nil, ErrAccessDenied
	}

	regs, err := s.registrationRepo.GetByGuardianID(ctx, guardianUserID)
	if err != nil {
		s.logger.Error("GetGuardianRegistrations: repository error for guardian=%d: %v", guardianUserID, err)
		return nil, fmt.Errorf("%w: GetGuardianRegistrations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetGuardianRegistrations: successfully fetched %d registrations for guardian=%d",
		len(regs), guardianUserID)
	return models.FromDomainRegistrationList(regs), nil
}
