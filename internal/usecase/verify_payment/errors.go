package verify_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSlipNotFound возвращается, когда платежный документ не найден
	ErrSlipNotFound = errors.New("payment slip not found")

	// ErrSlipAlreadyDecided возвращается, когда по документу уже принято решение
	ErrSlipAlreadyDecided = errors.New("payment slip already decided")

	// ErrBookingNotPayable возвращается, когда бронирование не ожидает оплаты
	ErrBookingNotPayable = errors.New("booking is not awaiting payment")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
