package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	createBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// CreateBookingRequest HTTP request model
//
// Либо передается draftId сохраненного черновика, либо параметры выбора явно
type CreateBookingRequest struct {
	UserID     int64    `json:"userId"`
	DraftID    *string  `json:"draftId,omitempty"`
	SpotID     string   `json:"spotId,omitempty"`
	Date       string   `json:"date,omitempty"`
	SlotStarts []string `json:"slotStarts,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        int64     `json:"userId"`
	SpotID        uuid.UUID `json:"spotId"`
	VehicleID     int64     `json:"vehicleId"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	TotalCost     float64   `json:"totalCost"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`

	QRCode string `json:"qrCode"`
	PIN    string `json:"pin"`

	SpotName     string  `json:"spotName"`
	VehiclePlate *string `json:"vehiclePlate,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	Slots []PricedSlot `json:"slots"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// PricedSlot цена одного выбранного слота
type PricedSlot struct {
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Price     float64 `json:"price"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	req := &createBooking.Request{
		UserID: r.UserID,
		Notes:  r.Notes,
	}

	if r.DraftID != nil {
		draftID, err := uuid.Parse(*r.DraftID)
		if err != nil {
			return nil, err
		}
		req.DraftID = &draftID
	}

	// Параметры выбора могут отсутствовать, если указан draftId
	if r.SpotID != "" {
		spotID, err := uuid.Parse(r.SpotID)
		if err != nil {
			return nil, err
		}
		req.SpotID = spotID
	}

	if r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	for _, start := range r.SlotStarts {
		ts, err := types.NewTimeStringFromString(start)
		if err != nil {
			return nil, err
		}
		req.SlotStarts = append(req.SlotStarts, ts)
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	slots := make([]PricedSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = PricedSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Price:     slot.Price,
		}
	}

	return &BookingResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		SpotID:        resp.SpotID,
		VehicleID:     resp.VehicleID,
		StartTime:     resp.StartTime.Format(time.RFC3339),
		EndTime:       resp.EndTime.Format(time.RFC3339),
		TotalCost:     resp.TotalCost,
		Status:        resp.Status,
		PaymentStatus: resp.PaymentStatus,
		QRCode:        resp.QRCode,
		PIN:           resp.PIN,
		SpotName:      resp.SpotName,
		VehiclePlate:  resp.VehiclePlate,
		Notes:         resp.Notes,
		Slots:         slots,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
