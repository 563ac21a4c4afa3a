package save_draft

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	spotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spot"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// UseCase use case для сохранения черновика бронирования
//
// Черновик фиксирует промежуточный выбор пользователя между шагами сценария
// (выбор слотов -> оплата) на стороне сервера. Клиент передает только id
// черновика, состояние выбора не живет на клиенте
type UseCase struct {
	draftRepo    DraftRepository
	spotRepo     SpotRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftRepo DraftRepository,
	spotRepo SpotRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftRepo:    draftRepo,
		spotRepo:     spotRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case сохранения черновика
// Черновик проходит только дешевые структурные проверки: полная валидация
// доступности слотов выполняется при создании бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SaveDraft: user=%d, spot=%s, date=%s, slots=%v",
		req.UserID, req.SpotID, req.Date.Format(domain.DateFormat), req.SlotStarts)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SaveDraft: validation failed: %v", err)
		return nil, err
	}

	// 2. Парковка должна существовать
	if _, err := uc.spotRepo.GetByID(ctx, req.SpotID); err != nil {
		if errors.Is(err, spotRepo.ErrSpotNotFound) {
			uc.logger.Warn("SaveDraft: spot=%s not found", req.SpotID)
			return nil, ErrSpotNotFound
		}
		uc.logger.Error("SaveDraft: failed to get spot=%s: %v", req.SpotID, err)
		return nil, fmt.Errorf("%w: failed to get spot: %v", ErrInternal, err)
	}

	// 3. Сохраняем черновик с TTL
	now := uc.timeProvider.Now()
	draft := &domain.DraftBooking{
		ID:         uuid.New(),
		UserID:     req.UserID,
		SpotID:     req.SpotID,
		Date:       req.Date,
		SlotStarts: req.SlotStarts,
		VehicleID:  req.VehicleID,
		Notes:      req.Notes,
		CreatedAt:  now,
		ExpiresAt:  now.Add(uc.draftRepo.TTL()),
	}

	if err := uc.draftRepo.Save(ctx, draft); err != nil {
		uc.logger.Error("SaveDraft: failed to save draft: %v", err)
		return nil, fmt.Errorf("%w: failed to save draft: %v", ErrInternal, err)
	}

	uc.logger.Info("SaveDraft: saved draft id=%s, expires at %s", draft.ID, draft.ExpiresAt.Format("15:04:05"))

	return &Response{
		ID:         draft.ID,
		UserID:     draft.UserID,
		SpotID:     draft.SpotID,
		Date:       draft.Date,
		SlotStarts: draft.SlotStarts,
		VehicleID:  draft.VehicleID,
		Notes:      draft.Notes,
		CreatedAt:  draft.CreatedAt,
		ExpiresAt:  draft.ExpiresAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
// Проверяется формат времени и непрерывность цепочки слотов
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.SpotID == uuid.Nil {
		return fmt.Errorf("%w: spotID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.SlotStarts) == 0 {
		return fmt.Errorf("%w: at least one slot must be selected", ErrInvalidInput)
	}

	for _, start := range req.SlotStarts {
		if err := start.Validate(); err != nil {
			return fmt.Errorf("%w: invalid slot start time %q: %v", ErrInvalidInput, start, err)
		}
	}

	// Цепочка проверяется по отсортированным началам: порядок в запросе
	// не имеет значения
	starts := make([]types.TimeString, len(req.SlotStarts))
	copy(starts, req.SlotStarts)
	sort.Slice(starts, func(i, j int) bool {
		return starts[i].IsBefore(starts[j])
	})

	for i := 1; i < len(starts); i++ {
		if starts[i-1] == starts[i] {
			return fmt.Errorf("%w: slot %q is selected more than once", ErrNonConsecutiveSlots, starts[i])
		}

		prevEnd, err := starts[i-1].AddMinutes(domain.SlotDurationMinutes)
		if err != nil || prevEnd != starts[i] {
			return fmt.Errorf("%w: slot %q does not follow %q", ErrNonConsecutiveSlots, starts[i], starts[i-1])
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
