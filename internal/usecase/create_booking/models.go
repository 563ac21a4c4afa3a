package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Request модель запроса на создание бронирования
// Либо указывается DraftID сохраненного черновика, либо параметры выбора явно
type Request struct {
	UserID  int64      // ID пользователя
	DraftID *uuid.UUID // ID черновика (опционально)

	SpotID     uuid.UUID          // ID парковки
	Date       time.Time          // Дата бронирования (без времени)
	SlotStarts []types.TimeString // Времена начала выбранных слотов ("10:00", "11:00", ...)
	Notes      *string            // Заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            uuid.UUID `json:"id"`
	UserID        int64     `json:"userId"`
	SpotID        uuid.UUID `json:"spotId"`
	VehicleID     int64     `json:"vehicleId"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	TotalCost     float64   `json:"totalCost"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`

	// Учетные данные доступа, выдаются при создании
	QRCode string `json:"qrCode"`
	PIN    string `json:"pin"`

	// Денормализованные данные
	SpotName     string  `json:"spotName"`
	VehiclePlate *string `json:"vehiclePlate,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	// Разбивка цены по слотам
	Slots []PricedSlot `json:"slots"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PricedSlot цена одного выбранного слота
type PricedSlot struct {
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
	Price     float64          `json:"price"`
}
