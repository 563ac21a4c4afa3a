package domain

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// SlotStatus classifies a candidate slot for the requesting driver
type SlotStatus string

const (
	// SlotAvailable the slot can be selected
	SlotAvailable SlotStatus = "available"
	// SlotBooked the slot overlaps an existing active booking
	SlotBooked SlotStatus = "booked"
	// SlotUnavailable the slot has begun and fewer than MinRemainingMinutes remain
	SlotUnavailable SlotStatus = "unavailable"
)

// TimeSlot is an ephemeral fixed-width booking window within a day
type TimeSlot struct {
	Start types.TimeString
	End   types.TimeString
}

// GenerateSlots partitions the open interval [open, close) into fixed
// 60-minute slots. The final slot is emitted only if it ends no later than
// close; close may be the 24:00 end-of-day sentinel. Deterministic, no side
// effects.
func GenerateSlots(open, close types.TimeString) ([]TimeSlot, error) {
	openMin, err := open.Minutes()
	if err != nil {
		return nil, err
	}
	closeMin, err := close.Minutes()
	if err != nil {
		return nil, err
	}

	slots := make([]TimeSlot, 0)
	for cur := openMin; cur+SlotDurationMinutes <= closeMin; cur += SlotDurationMinutes {
		start, err := types.NewTimeStringFromMinutes(cur)
		if err != nil {
			return nil, err
		}
		end, err := types.NewTimeStringFromMinutes(cur + SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		slots = append(slots, TimeSlot{Start: start, End: end})
	}
	return slots, nil
}

// AbsoluteInterval converts the slot to absolute timestamps on the given date
func (s TimeSlot) AbsoluteInterval(date time.Time) (time.Time, time.Time, error) {
	start, err := s.Start.OnDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := s.End.OnDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// RemainingMinutes returns how many minutes remain until the slot's end
// relative to now. For a slot entirely in the future this equals the full
// slot width; for an elapsed slot it is 0.
func (s TimeSlot) RemainingMinutes(date time.Time, now time.Time) (int, error) {
	start, end, err := s.AbsoluteInterval(date)
	if err != nil {
		return 0, err
	}
	if !now.After(start) {
		return SlotDurationMinutes, nil
	}
	if !now.Before(end) {
		return 0, nil
	}
	return int(end.Sub(now) / time.Minute), nil
}

// CountOverlappingBookings counts active bookings whose interval overlaps the
// slot on the given date. Half-open semantics: a booking ending exactly where
// the slot starts (or vice versa) does not overlap.
func (s TimeSlot) CountOverlappingBookings(date time.Time, bookings []*Booking) (int, error) {
	start, end, err := s.AbsoluteInterval(date)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, booking := range bookings {
		// Завершенные и отмененные бронирования слот не блокируют
		if !booking.IsActive() {
			continue
		}
		if booking.Overlaps(start, end) {
			count++
		}
	}
	return count, nil
}
