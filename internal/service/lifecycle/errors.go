package lifecycle

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса бронирования
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// ErrNoFreeSlots возвращается, когда на парковке нет свободных мест для въезда
	ErrNoFreeSlots = errors.New("no free slots on parking spot")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
