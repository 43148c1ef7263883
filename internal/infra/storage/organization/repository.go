package organization

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/apermyakov/SLM-RentalService/internal/domain"
	"github.com/apermyakov/SLM-RentalService/pkg/dbmetrics"
	"github.com/apermyakov/SLM-RentalService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с организациями, их полями и слотами аренды
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория организаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListWithSchedules получает все организации вместе с вложенными полями
// и слотами аренды. Используется витриной аренды: резолвер и фильтры
// работают по полностью загруженному срезу данных.
//
// Загрузка выполняется тремя запросами (организации, поля, слоты),
// чтобы не плодить декартово произведение при JOIN.
func (r *Repository) ListWithSchedules(ctx context.Context) ([]*domain.Organization, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"location",
		"sports",
		"latitude",
		"longitude",
		"created_at",
		"updated_at",
	).
		From("organizations").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWithSchedules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithSchedules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	organizations, err := r.scanOrganizations(rows)
	if err != nil {
		return nil, err
	}

	if len(organizations) == 0 {
		return organizations, nil
	}

	orgIDs := make([]int64, len(organizations))
	byID := make(map[int64]*domain.Organization, len(organizations))
	for i, org := range organizations {
		orgIDs[i] = org.ID
		byID[org.ID] = org
	}

	fields, err := r.loadFields(ctx, executor, orgIDs)
	if err != nil {
		return nil, err
	}

	for i := range fields {
		org, ok := byID[fields[i].OrganizationID]
		if !ok {
			continue
		}
		org.Fields = append(org.Fields, fields[i])
	}

	return organizations, nil
}

// GetByID получает организацию по ID вместе с полями и слотами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"location",
		"sports",
		"latitude",
		"longitude",
		"created_at",
		"updated_at",
	).
		From("organizations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var org domain.Organization
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&org.ID,
		&org.Name,
		&org.Description,
		&org.Location,
		pq.Array(&org.Sports),
		&org.Latitude,
		&org.Longitude,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOrganizationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan organization: %v", ErrScanRow, err)
	}

	org.CreatedAt = createdAt.Time
	org.UpdatedAt = updatedAt.Time

	fields, err := r.loadFields(ctx, executor, []int64{org.ID})
	if err != nil {
		return nil, err
	}
	org.Fields = fields

	return &org, nil
}

// GetFieldByID получает поле по ID (без слотов)
// Используется для проверки принадлежности поля организации
func (r *Repository) GetFieldByID(ctx context.Context, fieldID int64) (*domain.Field, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"organization_id",
		"name",
		"type",
		"surface",
		"indoor",
		"created_at",
		"updated_at",
	).
		From("fields").
		Where(squirrel.Eq{"id": fieldID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetFieldByID - build select query: %v", ErrBuildQuery, err)
	}

	var field domain.Field
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&field.ID,
		&field.OrganizationID,
		&field.Name,
		&field.Type,
		&field.Surface,
		&field.Indoor,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrFieldNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetFieldByID - scan field: %v", ErrScanRow, err)
	}

	field.CreatedAt = createdAt.Time
	field.UpdatedAt = updatedAt.Time

	return &field, nil
}

// loadFields загружает поля организаций вместе со слотами аренды
func (r *Repository) loadFields(ctx context.Context, executor DBExecutor, orgIDs []int64) ([]domain.Field, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"organization_id",
		"name",
		"type",
		"surface",
		"indoor",
		"created_at",
		"updated_at",
	).
		From("fields").
		Where(squirrel.Eq{"organization_id": orgIDs}).
		OrderBy("organization_id ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadFields - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadFields - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	fields := make([]domain.Field, 0)
	for rows.Next() {
		var field domain.Field
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&field.ID,
			&field.OrganizationID,
			&field.Name,
			&field.Type,
			&field.Surface,
			&field.Indoor,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: loadFields - scan row: %v", ErrScanRow, err)
		}

		field.CreatedAt = createdAt.Time
		field.UpdatedAt = updatedAt.Time
		fields = append(fields, field)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadFields - rows error: %v", ErrScanRow, err)
	}

	if len(fields) == 0 {
		return fields, nil
	}

	fieldIDs := make([]int64, len(fields))
	byID := make(map[int64]*domain.Field, len(fields))
	for i := range fields {
		fieldIDs[i] = fields[i].ID
		byID[fields[i].ID] = &fields[i]
	}

	slots, err := r.loadTimeSlots(ctx, executor, fieldIDs)
	if err != nil {
		return nil, err
	}

	for i := range slots {
		field, ok := byID[slots[i].FieldID]
		if !ok {
			continue
		}
		field.TimeSlots = append(field.TimeSlots, slots[i])
	}

	return fields, nil
}

// loadTimeSlots загружает слоты аренды для списка полей
func (r *Repository) loadTimeSlots(ctx context.Context, executor DBExecutor, fieldIDs []int64) ([]domain.TimeSlot, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"field_id",
		"day_of_week",
		"start_date",
		"end_date",
		"repeating",
		"start_time_minutes",
		"end_time_minutes",
		"price_per_hour",
		"created_at",
		"updated_at",
	).
		From("time_slots").
		Where(squirrel.Eq{"field_id": fieldIDs}).
		OrderBy("field_id ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadTimeSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadTimeSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.TimeSlot, 0)
	for rows.Next() {
		var slot domain.TimeSlot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.FieldID,
			&slot.DayOfWeek,
			&slot.StartDate,
			&slot.EndDate,
			&slot.Repeating,
			&slot.StartTimeMinutes,
			&slot.EndTimeMinutes,
			&slot.PricePerHour,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: loadTimeSlots - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadTimeSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// scanOrganizations сканирует результаты запроса в слайс организаций
func (r *Repository) scanOrganizations(rows *sql.Rows) ([]*domain.Organization, error) {
	organizations := make([]*domain.Organization, 0)

	for rows.Next() {
		var org domain.Organization
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&org.ID,
			&org.Name,
			&org.Description,
			&org.Location,
			pq.Array(&org.Sports),
			&org.Latitude,
			&org.Longitude,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanOrganizations - scan row: %v", ErrScanRow, err)
		}

		org.CreatedAt = createdAt.Time
		org.UpdatedAt = updatedAt.Time
		organizations = append(organizations, &org)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanOrganizations - rows error: %v", ErrScanRow, err)
	}

	return organizations, nil
}
