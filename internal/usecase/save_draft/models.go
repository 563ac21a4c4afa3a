package save_draft

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Request модель запроса на сохранение черновика бронирования
type Request struct {
	UserID     int64              // ID пользователя
	SpotID     uuid.UUID          // ID парковки
	Date       time.Time          // Дата бронирования (без времени)
	SlotStarts []types.TimeString // Времена начала выбранных слотов
	VehicleID  int64              // ID транспорта (опционально, 0 если не выбран)
	Notes      *string            // Заметки (опционально)
}

// Response модель ответа с сохраненным черновиком
type Response struct {
	ID         uuid.UUID          `json:"id"`
	UserID     int64              `json:"userId"`
	SpotID     uuid.UUID          `json:"spotId"`
	Date       time.Time          `json:"date"`
	SlotStarts []types.TimeString `json:"slotStarts"`
	VehicleID  int64              `json:"vehicleId"`
	Notes      *string            `json:"notes,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	ExpiresAt  time.Time          `json:"expiresAt"`
}
