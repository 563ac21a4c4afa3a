package paymentslip

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

var slipColumns = []string{
	"id",
	"booking_id",
	"image_url",
	"status",
	"ocr_text",
	"ocr_confidence",
	"ocr_verified",
	"verified_by",
	"verified_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с платежными документами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежных документов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись о загруженном платежном документе
func (r *Repository) Create(ctx context.Context, slip *domain.PaymentSlip) (*domain.PaymentSlip, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payment_slips").
		Columns(
			"id",
			"booking_id",
			"image_url",
			"status",
			"ocr_text",
			"ocr_confidence",
			"ocr_verified",
		).
		Values(
			slip.ID,
			slip.BookingID,
			slip.ImageURL,
			slip.Status,
			slip.OCRText,
			slip.OCRConfidence,
			slip.OCRVerified,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slip.CreatedAt = createdAt.Time
	slip.UpdatedAt = updatedAt.Time

	return slip, nil
}

// GetByID получает платежный документ по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentSlip, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slipColumns...).
		From("payment_slips").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSlip(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByBookingID получает все платежные документы бронирования
// Документы возвращаются от новых к старым
func (r *Repository) GetByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*domain.PaymentSlip, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slipColumns...).
		From("payment_slips").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slips := make([]*domain.PaymentSlip, 0)
	for rows.Next() {
		slip, err := r.scanSlipFromRows(rows)
		if err != nil {
			return nil, err
		}
		slips = append(slips, slip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - rows error: %v", ErrScanRow, err)
	}

	return slips, nil
}

// SaveOCRResult сохраняет результат автоматического OCR-анализа документа
func (r *Repository) SaveOCRResult(ctx context.Context, id uuid.UUID, text string, confidence float64, verified bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payment_slips").
		Set("ocr_text", text).
		Set("ocr_confidence", confidence).
		Set("ocr_verified", verified).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SaveOCRResult - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "SaveOCRResult")
}

// SetDecision фиксирует решение по документу (verified/rejected) и автора решения
// Для автоматического решения verifiedBy передается nil
func (r *Repository) SetDecision(ctx context.Context, id uuid.UUID, status domain.SlipStatus, verifiedBy *int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payment_slips").
		Set("status", status).
		Set("verified_by", verifiedBy).
		Set("verified_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetDecision - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "SetDecision")
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrSlipNotFound
	}

	return nil
}

func (r *Repository) scanSlip(row *sql.Row, op string) (*domain.PaymentSlip, error) {
	var slip domain.PaymentSlip
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slip.ID,
		&slip.BookingID,
		&slip.ImageURL,
		&slip.Status,
		&slip.OCRText,
		&slip.OCRConfidence,
		&slip.OCRVerified,
		&slip.VerifiedBy,
		&slip.VerifiedAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlipNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan slip: %v", ErrScanRow, op, err)
	}

	slip.CreatedAt = createdAt.Time
	slip.UpdatedAt = updatedAt.Time

	return &slip, nil
}

func (r *Repository) scanSlipFromRows(rows *sql.Rows) (*domain.PaymentSlip, error) {
	var slip domain.PaymentSlip
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&slip.ID,
		&slip.BookingID,
		&slip.ImageURL,
		&slip.Status,
		&slip.OCRText,
		&slip.OCRConfidence,
		&slip.OCRVerified,
		&slip.VerifiedBy,
		&slip.VerifiedAt,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: scanSlipFromRows - scan row: %v", ErrScanRow, err)
	}

	slip.CreatedAt = createdAt.Time
	slip.UpdatedAt = updatedAt.Time

	return &slip, nil
}
