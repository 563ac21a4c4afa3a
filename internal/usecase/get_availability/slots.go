package get_availability

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// classifySlots строит сетку слотов на день и вычисляет статус каждого слота
//
// Статусы:
//   - unavailable: слот уже начался и до его конца осталось меньше допустимого
//     минимума (или слот полностью прошел)
//   - booked: все места в слоте заняты активными бронированиями
//   - available: слот можно выбрать; для него рассчитывается цена
//
// Цена слота пропорциональна оставшемуся времени: полный будущий слот стоит
// полную почасовую цену, начавшийся - от половины цены и выше
func classifySlots(
	spot *domain.ParkingSpot,
	date time.Time,
	now time.Time,
	bookings []*domain.Booking,
) ([]Slot, error) {
	hours := spot.ResolveDay(date)
	if !hours.IsOpen {
		return []Slot{}, nil
	}

	timeSlots, err := domain.GenerateSlots(hours.Open, hours.Close)
	if err != nil {
		return nil, err
	}

	result := make([]Slot, 0, len(timeSlots))

	for _, ts := range timeSlots {
		slot := Slot{
			StartTime:  ts.Start,
			EndTime:    ts.End,
			TotalSpots: spot.TotalSlots,
		}

		remaining, err := ts.RemainingMinutes(date, now)
		if err != nil {
			return nil, err
		}

		overlapping, err := ts.CountOverlappingBookings(date, bookings)
		if err != nil {
			return nil, err
		}

		availableSpots := spot.TotalSlots - overlapping
		if availableSpots < 0 {
			availableSpots = 0
		}
		slot.AvailableSpots = availableSpots

		switch {
		case !domain.IsSelectable(remaining):
			// Слот прошел или до его конца осталось меньше минимума
			slot.Status = string(domain.SlotUnavailable)
		case availableSpots <= 0:
			slot.Status = string(domain.SlotBooked)
		default:
			slot.Status = string(domain.SlotAvailable)
			slot.Price = domain.SlotPrice(spot.PricePerHour, remaining)
		}

		result = append(result, slot)
	}

	return result, nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
