package scan_access

import (
	"time"

	"github.com/google/uuid"
)

// Действия, выполненные по результату сканирования
const (
	ActionEntry = "entry" // Зарегистрирован въезд
	ActionExit  = "exit"  // Зарегистрирован выезд
	ActionNone  = "none"  // Код распознан, но действие не выполнено
)

// Request модель запроса на сканирование кода доступа
type Request struct {
	OperatorID int64     // ID оператора парковки, выполняющего сканирование
	SpotID     uuid.UUID // ID парковки, на которой сканируют код
	Code       string    // Содержимое кода: QR-payload, плоский QR-токен или PIN
}

// Response результат сканирования
type Response struct {
	Allowed bool   `json:"allowed"` // Разрешен ли проезд
	Action  string `json:"action"`  // entry | exit | none
	Message string `json:"message"` // Пояснение для оператора

	BookingID     uuid.UUID `json:"bookingId"`
	BookingStatus string    `json:"bookingStatus"`
	UserID        int64     `json:"userId"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	VehiclePlate  *string   `json:"vehiclePlate,omitempty"`
}
