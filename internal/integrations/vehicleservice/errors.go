package vehicleservice

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда у пользователя нет выбранного транспорта
	ErrVehicleNotFound = errors.New("user has no selected vehicle")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("vehicleservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("vehicleservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что VehicleService недоступен и бронирование создается без номера авто
	ErrServiceDegraded = errors.New("vehicleservice unavailable: graceful degradation applied")
)
