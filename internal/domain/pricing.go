package domain

import "math"

// IsSelectable reports whether a slot with the given remaining minutes may
// still be offered to the driver
func IsSelectable(remainingMinutes int) bool {
	return remainingMinutes >= MinRemainingMinutes
}

// SlotPrice prices one slot given the spot's hourly price and the minutes
// remaining until the slot's end. A fully future slot costs the full hourly
// price; a partially elapsed slot is prorated from half price upwards and
// rounded up to the nearest whole currency unit. Pure and deterministic.
//
// Callers must not price slots with remainingMinutes < MinRemainingMinutes;
// such slots are not offered at all (see IsSelectable).
func SlotPrice(pricePerHour float64, remainingMinutes int) float64 {
	if remainingMinutes >= SlotDurationMinutes {
		return pricePerHour
	}

	halfPrice := pricePerHour * 0.5
	elapsed := float64(remainingMinutes-MinRemainingMinutes) / float64(MinRemainingMinutes)
	return math.Ceil(halfPrice + elapsed*halfPrice)
}

// TotalCost sums the selected slots' prices, rounded up to a whole unit
func TotalCost(slotPrices []float64) float64 {
	var sum float64
	for _, p := range slotPrices {
		sum += p
	}
	return math.Ceil(sum)
}
