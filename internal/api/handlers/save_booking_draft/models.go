package save_booking_draft

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	saveDraft "github.com/m04kA/SMC-ParkingService/internal/usecase/save_draft"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// SaveDraftRequest HTTP request model
type SaveDraftRequest struct {
	UserID     int64    `json:"userId"`
	SpotID     string   `json:"spotId"`
	Date       string   `json:"date"`
	SlotStarts []string `json:"slotStarts"`
	VehicleID  int64    `json:"vehicleId,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
}

// DraftResponse HTTP response model
type DraftResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     int64     `json:"userId"`
	SpotID     uuid.UUID `json:"spotId"`
	Date       string    `json:"date"`
	SlotStarts []string  `json:"slotStarts"`
	VehicleID  int64     `json:"vehicleId"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  string    `json:"createdAt"`
	ExpiresAt  string    `json:"expiresAt"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *SaveDraftRequest) ToUseCaseRequest() (*saveDraft.Request, error) {
	spotID, err := uuid.Parse(r.SpotID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	req := &saveDraft.Request{
		UserID:    r.UserID,
		SpotID:    spotID,
		Date:      date,
		VehicleID: r.VehicleID,
		Notes:     r.Notes,
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
func FromUseCaseResponse(resp *saveDraft.Response) *DraftResponse {
	slotStarts := make([]string, len(resp.SlotStarts))
	for i, start := range resp.SlotStarts {
		slotStarts[i] = start.String()
	}

	return &DraftResponse{
		ID:         resp.ID,
		UserID:     resp.UserID,
		SpotID:     resp.SpotID,
		Date:       resp.Date.Format(domain.DateFormat),
		SlotStarts: slotStarts,
		VehicleID:  resp.VehicleID,
		Notes:      resp.Notes,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		ExpiresAt:  resp.ExpiresAt.Format(time.RFC3339),
	}
}
