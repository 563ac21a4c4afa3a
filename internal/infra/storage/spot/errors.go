package spot

import "errors"

var (
	// ErrSpotNotFound возвращается, когда парковка не найдена
	ErrSpotNotFound = errors.New("spot.repository: spot not found")

	// ErrNoFreeSlots возвращается, когда на парковке нет свободных мест
	ErrNoFreeSlots = errors.New("spot.repository: no free slots")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("spot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("spot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("spot.repository: failed to scan row")

	// ErrMarshalHours возвращается при ошибке сериализации расписания
	ErrMarshalHours = errors.New("spot.repository: failed to marshal operating hours")
)
