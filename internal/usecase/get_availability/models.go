package get_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Request модель запроса на получение сетки слотов
type Request struct {
	UserID int64     // ID пользователя (для логирования, не влияет на результат)
	SpotID uuid.UUID // ID парковки
	Date   time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа с сеткой слотов на день
type Response struct {
	Date   time.Time // Дата, на которую запрашивались слоты
	SpotID uuid.UUID // ID парковки
	IsOpen bool      // Работает ли парковка в этот день
	Slots  []Slot    // Сетка слотов
}

// Slot модель временного слота
type Slot struct {
	StartTime      types.TimeString // Время начала слота (например, "10:00")
	EndTime        types.TimeString // Время конца слота ("24:00" для последнего слота дня)
	Status         string           // available | booked | unavailable
	AvailableSpots int              // Количество свободных мест в слоте
	TotalSpots     int              // Общее количество мест
	Price          float64          // Цена слота с учетом пропорционального расчета (только для available)
}
