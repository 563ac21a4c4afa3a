package spot

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

var spotColumns = []string{
	"id",
	"owner_id",
	"name",
	"total_slots",
	"available_slots",
	"price_per_hour",
	"price_per_day",
	"price_per_month",
	"is_always_open",
	"operating_hours",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с парковками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория парковок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает парковку по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ParkingSpot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(spotColumns...).
		From("parking_spots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSpot(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// UpdateConfig обновляет конфигурацию парковки: тарифы, вместимость и часы работы
// Обновляются только переданные (не-nil) поля
func (r *Repository) UpdateConfig(ctx context.Context, id uuid.UUID, update domain.SpotConfigUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("parking_spots").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.Name != nil {
		updateBuilder = updateBuilder.Set("name", *update.Name)
	}
	if update.PricePerHour != nil {
		updateBuilder = updateBuilder.Set("price_per_hour", *update.PricePerHour)
	}
	if update.PricePerDay != nil {
		updateBuilder = updateBuilder.Set("price_per_day", *update.PricePerDay)
	}
	if update.PricePerMonth != nil {
		updateBuilder = updateBuilder.Set("price_per_month", *update.PricePerMonth)
	}
	if update.TotalSlots != nil {
		// При изменении вместимости свободные места пересчитываются
		// с сохранением числа занятых: available = new_total - (old_total - old_available)
		updateBuilder = updateBuilder.
			Set("available_slots", squirrel.Expr(
				"GREATEST(0, ? - (total_slots - available_slots))", *update.TotalSlots)).
			Set("total_slots", *update.TotalSlots)
	}
	if update.IsAlwaysOpen != nil {
		updateBuilder = updateBuilder.Set("is_always_open", *update.IsAlwaysOpen)
	}
	if update.Hours != nil {
		hoursJSON, err := json.Marshal(update.Hours)
		if err != nil {
			return fmt.Errorf("%w: UpdateConfig - %v", ErrMarshalHours, err)
		}
		updateBuilder = updateBuilder.Set("operating_hours", hoursJSON)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateConfig - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateConfig - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateConfig - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpotNotFound
	}

	return nil
}

// DecrementAvailable атомарно уменьшает счетчик свободных мест на единицу
// Условие available_slots > 0 в WHERE гарантирует, что счетчик не уйдет
// в минус при конкурирующих сканированиях на въезд
func (r *Repository) DecrementAvailable(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parking_spots").
		Set("available_slots", squirrel.Expr("available_slots - 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Gt{"available_slots": 0}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DecrementAvailable - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DecrementAvailable - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DecrementAvailable - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо парковки нет, либо свободных мест нет - различаем отдельным запросом
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return ErrNoFreeSlots
	}

	return nil
}

// IncrementAvailable атомарно увеличивает счетчик свободных мест на единицу
// LEAST не дает счетчику превысить физическую вместимость
func (r *Repository) IncrementAvailable(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parking_spots").
		Set("available_slots", squirrel.Expr("LEAST(available_slots + 1, total_slots)")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementAvailable - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementAvailable - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementAvailable - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpotNotFound
	}

	return nil
}

func (r *Repository) scanSpot(row *sql.Row, op string) (*domain.ParkingSpot, error) {
	var spot domain.ParkingSpot
	var hoursJSON []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&spot.ID,
		&spot.OwnerID,
		&spot.Name,
		&spot.TotalSlots,
		&spot.AvailableSlots,
		&spot.PricePerHour,
		&spot.PricePerDay,
		&spot.PricePerMonth,
		&spot.IsAlwaysOpen,
		&hoursJSON,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSpotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan spot: %v", ErrScanRow, op, err)
	}

	if len(hoursJSON) > 0 {
		if err := json.Unmarshal(hoursJSON, &spot.Hours); err != nil {
			return nil, fmt.Errorf("%w: %s - unmarshal operating hours: %v", ErrScanRow, op, err)
		}
	}

	spot.CreatedAt = createdAt.Time
	spot.UpdatedAt = updatedAt.Time

	return &spot, nil
}
