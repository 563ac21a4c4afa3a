package get_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	getAvailability "github.com/m04kA/SMC-ParkingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date   string    `json:"date"`
	SpotID uuid.UUID `json:"spotId"`
	IsOpen bool      `json:"isOpen"`
	Slots  []Slot    `json:"slots"`
}

// Slot модель временного слота
type Slot struct {
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Status         string  `json:"status"`
	AvailableSpots int     `json:"availableSpots"`
	TotalSpots     int     `json:"totalSpots"`
	Price          float64 `json:"price"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			StartTime:      slot.StartTime.String(),
			EndTime:        slot.EndTime.String(),
			Status:         slot.Status,
			AvailableSpots: slot.AvailableSpots,
			TotalSpots:     slot.TotalSpots,
			Price:          slot.Price,
		}
	}

	return &AvailabilityResponse{
		Date:   resp.Date.Format(domain.DateFormat),
		SpotID: resp.SpotID,
		IsOpen: resp.IsOpen,
		Slots:  slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(userID int64, spotID uuid.UUID, dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		UserID: userID,
		SpotID: spotID,
		Date:   date,
	}, nil
}
