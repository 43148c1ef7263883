package registration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/apermyakov/SLM-RentalService/internal/domain"
	"github.com/apermyakov/SLM-RentalService/pkg/dbmetrics"
	"github.com/apermyakov/SLM-RentalService/pkg/psqlbuilder"
)

// DBExecutor интерфейс исполнителя запросов (см. pkg/dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с регистрациями детей на события
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория регистраций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByGuardianID получает все регистрации, где пользователь является опекуном
func (r *Repository) GetByGuardianID(ctx context.Context, guardianUserID int64) ([]*domain.EventRegistration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectRegistrations().
		Where(squirrel.Eq{"guardian_user_id": guardianUserID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByGuardianID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByGuardianID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRegistrations(rows)
}

// GetByConsentRequestID получает все регистрации, привязанные к запросу подписи.
// Один подписанный документ может покрывать несколько регистраций
// (например, нескольких детей одного опекуна).
//
// Внутри транзакции строки блокируются через FOR UPDATE, чтобы два
// конкурентных вебхука не синхронизировали одни и те же регистрации.
func (r *Repository) GetByConsentRequestID(ctx context.Context, requestID string) ([]*domain.EventRegistration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectRegistrations().
		Where(squirrel.Eq{"consent_request_id": requestID}).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByConsentRequestID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByConsentRequestID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRegistrations(rows)
}

// UpdateConsentStatus обновляет статус согласия одной регистрации
func (r *Repository) UpdateConsentStatus(ctx context.Context, id int64, status domain.ConsentStatus, signedAt *time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("event_registrations").
		Set("consent_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if signedAt != nil {
		updateBuilder = updateBuilder.Set("consent_signed_at", *signedAt)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateConsentStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateConsentStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateConsentStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRegistrationNotFound
	}

	return nil
}

func selectRegistrations() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"event_id",
		"child_user_id",
		"guardian_user_id",
		"consent_status",
		"consent_request_id",
		"consent_signed_at",
		"created_at",
		"updated_at",
	).From("event_registrations")
}

// scanRegistrations сканирует результаты запроса в слайс регистраций
func (r *Repository) scanRegistrations(rows *sql.Rows) ([]*domain.EventRegistration, error) {
	registrations := make([]*domain.EventRegistration, 0)

	for rows.Next() {
		var reg domain.EventRegistration
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&reg.ID,
			&reg.EventID,
			&reg.ChildUserID,
			&reg.GuardianUserID,
			&reg.ConsentStatus,
			&reg.ConsentRequestID,
			&reg.ConsentSignedAt,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRegistrations - scan row: %v", ErrScanRow, err)
		}

		reg.CreatedAt = createdAt.Time
		reg.UpdatedAt = updatedAt.Time
		registrations = append(registrations, &reg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRegistrations - rows error: %v", ErrScanRow, err)
	}

	return registrations, nil
}
