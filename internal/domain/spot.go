package domain

import (
	"time"

	"github.com/google/uuid"
)

// ParkingSpot represents a parking location with bookable capacity
type ParkingSpot struct {
	ID      uuid.UUID
	OwnerID int64
	Name    string

	// TotalSlots is the physical capacity; AvailableSlots is the live count of
	// free spaces, mutated only by the lifecycle service on entry/exit scans.
	// Invariant: 0 <= AvailableSlots <= TotalSlots
	TotalSlots     int
	AvailableSlots int

	PricePerHour  float64
	PricePerDay   *float64
	PricePerMonth *float64

	// IsAlwaysOpen short-circuits the weekly schedule to 24/7
	IsAlwaysOpen bool
	Hours        WeekSchedule

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SpotConfigUpdate is a partial update of the spot's bookable configuration.
// Nil fields are left untouched.
type SpotConfigUpdate struct {
	Name          *string
	PricePerHour  *float64
	PricePerDay   *float64
	PricePerMonth *float64
	TotalSlots    *int
	IsAlwaysOpen  *bool
	Hours         *WeekSchedule
}

// IsOwnedBy returns true if the spot belongs to the given operator
func (s *ParkingSpot) IsOwnedBy(userID int64) bool {
	return s.OwnerID == userID
}

// HasFreeCapacity returns true if at least one physical space is free
func (s *ParkingSpot) HasFreeCapacity() bool {
	return s.AvailableSlots > 0
}

// IsFull returns true if all physical spaces are occupied
func (s *ParkingSpot) IsFull() bool {
	return s.AvailableSlots <= 0
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *ParkingSpot) OccupancyRate() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	occupied := s.TotalSlots - s.AvailableSlots
	return float64(occupied) / float64(s.TotalSlots) * 100
}

// ResolveDay resolves the spot's operating hours for the given calendar date
func (s *ParkingSpot) ResolveDay(date time.Time) DayHours {
	if s.IsAlwaysOpen {
		return DayHours{IsOpen: true, Open: DayStart, Close: DayEnd}
	}
	return s.Hours.ResolveDay(date)
}
