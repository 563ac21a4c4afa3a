package create_booking

import "errors"

var (
	// ErrSpotNotFound возвращается, когда парковка не найдена
	ErrSpotNotFound = errors.New("parking spot not found")

	// ErrVehicleNotFound возвращается, когда у пользователя нет выбранного транспорта
	ErrVehicleNotFound = errors.New("user has no selected vehicle")

	// ErrDraftNotFound возвращается, когда черновик не найден или истек
	ErrDraftNotFound = errors.New("booking draft not found or expired")

	// ErrNonConsecutiveSlots возвращается, когда выбранные слоты не образуют
	// непрерывную цепочку
	ErrNonConsecutiveSlots = errors.New("selected slots are not consecutive")

	// ErrSlotUnavailable возвращается, когда слот нельзя выбрать:
	// он прошел, до его конца осталось меньше минимума или он вне часов работы
	ErrSlotUnavailable = errors.New("slot is not available for booking")

	// ErrSlotConflict возвращается, когда все места в одном из выбранных слотов
	// уже заняты активными бронированиями
	ErrSlotConflict = errors.New("slot capacity is exhausted")

	// ErrSpotClosed возвращается, когда парковка закрыта в указанную дату
	ErrSpotClosed = errors.New("parking spot is closed on this date")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
