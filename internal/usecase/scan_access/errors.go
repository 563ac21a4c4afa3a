package scan_access

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование по коду не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSpotNotFound возвращается, когда парковка не найдена
	ErrSpotNotFound = errors.New("parking spot not found")

	// ErrSpotMismatch возвращается, когда код относится к другой парковке
	ErrSpotMismatch = errors.New("code belongs to another parking spot")

	// ErrPaymentNotVerified возвращается при попытке въезда без подтвержденной оплаты
	ErrPaymentNotVerified = errors.New("payment is not verified")

	// ErrNoFreeSlots возвращается, когда на парковке нет свободных мест
	ErrNoFreeSlots = errors.New("no free slots on parking spot")

	// ErrAccessDenied возвращается, когда сканирует не оператор парковки
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
