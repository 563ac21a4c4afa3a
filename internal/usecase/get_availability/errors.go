package get_availability

import "errors"

var (
	// ErrSpotNotFound возвращается, когда парковка не найдена
	ErrSpotNotFound = errors.New("parking spot not found")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
