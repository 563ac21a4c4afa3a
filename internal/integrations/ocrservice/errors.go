package ocrservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("ocrservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("ocrservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что OCR недоступен: документ остается в ручной проверке
	ErrServiceDegraded = errors.New("ocrservice unavailable: graceful degradation applied")
)
