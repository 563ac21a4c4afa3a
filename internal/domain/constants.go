package domain

import "github.com/m04kA/SMC-ParkingService/pkg/types"

// Slot geometry
const (
	// SlotDurationMinutes фиксированная ширина слота бронирования
	SlotDurationMinutes = 60

	// MinRemainingMinutes минимальный остаток времени до конца слота,
	// при котором уже начавшийся слот еще можно выбрать
	MinRemainingMinutes = 30
)

// Day boundaries. DayEnd ("24:00") is a real end-of-day sentinel:
// a slot ending at 24:00 covers the full hour after 23:00.
const (
	DayStart types.TimeString = "00:00"
	DayEnd   types.TimeString = "24:00"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinTotalSlots               = 1
	MaxTotalSlots               = 10000
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// InactiveStatuses список статусов, не занимающих вместимость слота
// Используется для фильтрации при подсчёте доступных слотов
var InactiveStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих вместимость слота
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusActive,
}
