package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotPrice(t *testing.T) {
	tests := []struct {
		name             string
		pricePerHour     float64
		remainingMinutes int
		want             float64
	}{
		{"full future slot costs full price", 20, 60, 20},
		{"45 minutes remaining", 20, 45, 15},
		{"exactly 30 minutes remaining costs half price", 20, 30, 10},
		{"59 minutes remaining rounds up", 20, 59, 20},
		{"proration of odd base price rounds up", 25, 45, 19}, // 12.5 + 6.25 = 18.75
		{"zero price stays zero", 0, 45, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlotPrice(tt.pricePerHour, tt.remainingMinutes))
		})
	}
}

func TestIsSelectable(t *testing.T) {
	assert.True(t, IsSelectable(60))
	assert.True(t, IsSelectable(30))
	assert.False(t, IsSelectable(29))
	assert.False(t, IsSelectable(20))
	assert.False(t, IsSelectable(0))
}

func TestTotalCost(t *testing.T) {
	assert.Equal(t, float64(35), TotalCost([]float64{20, 15}))
	assert.Equal(t, float64(20), TotalCost([]float64{19.5, 0.2}))
	assert.Equal(t, float64(0), TotalCost(nil))
}
