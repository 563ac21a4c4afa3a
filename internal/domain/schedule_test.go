package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

// Понедельник и воскресенье одной недели
var (
	monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
)

func TestWeekSchedule_ResolveDay(t *testing.T) {
	schedule := WeekSchedule{
		"monday": DaySchedule{IsOpen: true, OpenTime: ptr.Ptr("08:00"), CloseTime: ptr.Ptr("20:00")},
		"sunday": DaySchedule{IsOpen: false},
	}

	t.Run("open day resolves its hours", func(t *testing.T) {
		hours := schedule.ResolveDay(monday)
		require.True(t, hours.IsOpen)
		assert.Equal(t, "08:00", hours.Open.String())
		assert.Equal(t, "20:00", hours.Close.String())
	})

	t.Run("closed day yields no hours", func(t *testing.T) {
		assert.False(t, schedule.ResolveDay(sunday).IsOpen)
	})

	t.Run("missing day yields no hours", func(t *testing.T) {
		tuesday := monday.AddDate(0, 0, 1)
		assert.False(t, schedule.ResolveDay(tuesday).IsOpen)
	})
}

func TestWeekSchedule_ResolveDay_24Hours(t *testing.T) {
	schedule := WeekSchedule{
		// is24Hours переопределяет open/close
		"monday": DaySchedule{IsOpen: true, Is24Hours: true, OpenTime: ptr.Ptr("08:00"), CloseTime: ptr.Ptr("20:00")},
	}

	hours := schedule.ResolveDay(monday)
	require.True(t, hours.IsOpen)
	assert.Equal(t, DayStart, hours.Open)
	assert.Equal(t, DayEnd, hours.Close)
}

func TestWeekSchedule_ResolveDay_InvalidHours(t *testing.T) {
	tests := []struct {
		name string
		day  DaySchedule
	}{
		{"nil open time", DaySchedule{IsOpen: true, CloseTime: ptr.Ptr("20:00")}},
		{"nil close time", DaySchedule{IsOpen: true, OpenTime: ptr.Ptr("08:00")}},
		{"unparseable time", DaySchedule{IsOpen: true, OpenTime: ptr.Ptr("8am"), CloseTime: ptr.Ptr("20:00")}},
		{"open not before close", DaySchedule{IsOpen: true, OpenTime: ptr.Ptr("20:00"), CloseTime: ptr.Ptr("08:00")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := WeekSchedule{"monday": tt.day}
			assert.False(t, schedule.ResolveDay(monday).IsOpen)
		})
	}
}

func TestWeekSchedule_UnmarshalJSON_NormalizesKeys(t *testing.T) {
	raw := `{" Monday ": {"isOpen": true, "open": "09:00", "close": "18:00"}}`

	var schedule WeekSchedule
	require.NoError(t, json.Unmarshal([]byte(raw), &schedule))

	hours := schedule.ResolveDay(monday)
	require.True(t, hours.IsOpen)
	assert.Equal(t, "09:00", hours.Open.String())
}

func TestParkingSpot_ResolveDay_AlwaysOpen(t *testing.T) {
	spot := &ParkingSpot{IsAlwaysOpen: true}

	hours := spot.ResolveDay(sunday)
	require.True(t, hours.IsOpen)
	assert.Equal(t, DayStart, hours.Open)
	assert.Equal(t, DayEnd, hours.Close)
}
