package discover_rentals

import (
	"context"
	"fmt"
)

// UseCase use case витрины аренды: резолвер вхождений, сборка листингов,
// фильтрация и группировка по организациям
type UseCase struct {
	orgRepo      OrganizationRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(orgRepo OrganizationRepository, logger Logger) *UseCase {
	return &UseCase{
		orgRepo:      orgRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case витрины аренды
//
// Конвейер одноходовый и чисто вычислительный: снимок данных из БД ->
// резолвер вхождений -> сборка листингов -> фильтры -> группировка.
// Каждый запрос пересчитывает всё с нуля, промежуточные результаты
// не кешируются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DiscoverRentals: sports=%v, fieldTypes=%v, query=%q, hasViewer=%t",
		req.Sports, req.FieldTypes, req.Query, req.Viewer != nil)

	// 1. Валидация фильтров
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DiscoverRentals: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время (референс для резолвера)
	now := uc.timeProvider.Now()

	// 3. Загружаем полный снимок: организации -> поля -> слоты
	orgs, err := uc.orgRepo.ListWithSchedules(ctx)
	if err != nil {
		uc.logger.Error("DiscoverRentals: failed to load organizations: %v", err)
		return nil, fmt.Errorf("%w: failed to load organizations: %v", ErrInternal, err)
	}

	// 4. Собираем листинги с ближайшими вхождениями и расстояниями
	listings := assembleListings(orgs, now, req.Viewer)

	// 5. Применяем фильтры
	filtered := applyFilters(listings, toFilterOptions(req))

	// 6. Группируем по организациям, сохраняя порядок
	groups := groupByOrganization(filtered)

	uc.logger.Info("DiscoverRentals: %d organizations, %d listings assembled, %d after filters, %d groups",
		len(orgs), len(listings), len(filtered), len(groups))

	return &Response{
		Groups:        groups,
		TotalListings: len(filtered),
	}, nil
}
