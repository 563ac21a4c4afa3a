package save_draft

import "errors"

var (
	// ErrSpotNotFound возвращается, когда парковка не найдена
	ErrSpotNotFound = errors.New("parking spot not found")

	// ErrNonConsecutiveSlots возвращается, когда выбранные слоты не образуют
	// непрерывную цепочку
	ErrNonConsecutiveSlots = errors.New("selected slots are not consecutive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
