package create_booking

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
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

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// buildConsecutiveSlots проверяет, что выбранные слоты образуют непрерывную
// цепочку, и возвращает их в виде интервалов
//
// Порядок передачи не имеет значения: времена начала сортируются, после чего
// конец каждого слота должен совпадать с началом следующего; дубликаты
// отклоняются. Разрывная выборка отклоняется целиком - пользователь должен
// явно создать отдельные бронирования
func buildConsecutiveSlots(slotStarts []types.TimeString) ([]domain.TimeSlot, error) {
	starts := sortedSlotStarts(slotStarts)

	slots := make([]domain.TimeSlot, 0, len(starts))

	for i, start := range starts {
		if i > 0 && starts[i-1] == start {
			return nil, fmt.Errorf("%w: slot %q is selected more than once", ErrNonConsecutiveSlots, start)
		}

		end, err := start.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: slot %q does not fit in the day", ErrSlotUnavailable, start)
		}

		if i > 0 {
			prev := slots[i-1]
			if prev.End != start {
				return nil, fmt.Errorf("%w: slot %q does not follow %q", ErrNonConsecutiveSlots, start, prev.Start)
			}
		}

		slots = append(slots, domain.TimeSlot{Start: start, End: end})
	}

	return slots, nil
}

// sortedSlotStarts возвращает отсортированную копию времен начала,
// не меняя исходный запрос
func sortedSlotStarts(slotStarts []types.TimeString) []types.TimeString {
	starts := make([]types.TimeString, len(slotStarts))
	copy(starts, slotStarts)
	sort.Slice(starts, func(i, j int) bool {
		return starts[i].IsBefore(starts[j])
	})
	return starts
}

// validateSlotsWithinHours проверяет, что все слоты лежат в часах работы парковки
func validateSlotsWithinHours(slots []domain.TimeSlot, hours domain.DayHours) error {
	for _, slot := range slots {
		if slot.Start.IsBefore(hours.Open) || slot.End.IsAfter(hours.Close) {
			return fmt.Errorf("%w: slot %s-%s is outside operating hours %s-%s",
				ErrSlotUnavailable, slot.Start, slot.End, hours.Open, hours.Close)
		}
	}
	return nil
}

// validateSlotsSelectable проверяет временную доступность каждого слота
// Будущие слоты доступны всегда; начавшийся слот доступен, пока до его конца
// остается не меньше допустимого минимума
func validateSlotsSelectable(slots []domain.TimeSlot, date time.Time, now time.Time) error {
	for _, slot := range slots {
		remaining, err := slot.RemainingMinutes(date, now)
		if err != nil {
			return fmt.Errorf("%w: failed to compute remaining time: %v", ErrInternal, err)
		}
		if !domain.IsSelectable(remaining) {
			return fmt.Errorf("%w: slot %s-%s has already passed or has too little time left",
				ErrSlotUnavailable, slot.Start, slot.End)
		}
	}
	return nil
}

// priceSlots рассчитывает цену каждого слота с учетом оставшегося времени
func priceSlots(slots []domain.TimeSlot, pricePerHour float64, date time.Time, now time.Time) ([]PricedSlot, float64, error) {
	priced := make([]PricedSlot, 0, len(slots))
	prices := make([]float64, 0, len(slots))

	for _, slot := range slots {
		remaining, err := slot.RemainingMinutes(date, now)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: failed to compute remaining time: %v", ErrInternal, err)
		}

		price := domain.SlotPrice(pricePerHour, remaining)
		priced = append(priced, PricedSlot{
			StartTime: slot.Start,
			EndTime:   slot.End,
			Price:     price,
		})
		prices = append(prices, price)
	}

	return priced, domain.TotalCost(prices), nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
