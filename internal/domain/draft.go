package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// DraftBooking is the driver's in-progress selection, persisted server-side
// with a TTL and passed between flow steps by id (never kept as ambient
// client state).
type DraftBooking struct {
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

// IsExpired returns true if the draft passed its TTL
func (d *DraftBooking) IsExpired(now time.Time) bool {
	return now.After(d.ExpiresAt)
}
