package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name      string
		open      types.TimeString
		close     types.TimeString
		wantCount int
		wantFirst TimeSlot
		wantLast  TimeSlot
	}{
		{
			name:      "regular working day",
			open:      "08:00",
			close:     "20:00",
			wantCount: 12,
			wantFirst: TimeSlot{Start: "08:00", End: "09:00"},
			wantLast:  TimeSlot{Start: "19:00", End: "20:00"},
		},
		{
			name:      "partial final hour is dropped",
			open:      "08:00",
			close:     "12:30",
			wantCount: 4,
			wantFirst: TimeSlot{Start: "08:00", End: "09:00"},
			wantLast:  TimeSlot{Start: "11:00", End: "12:00"},
		},
		{
			name:      "close at 24:00 yields a full last hour",
			open:      "22:00",
			close:     "24:00",
			wantCount: 2,
			wantFirst: TimeSlot{Start: "22:00", End: "23:00"},
			wantLast:  TimeSlot{Start: "23:00", End: "24:00"},
		},
		{
			name:      "full 24h day",
			open:      DayStart,
			close:     DayEnd,
			wantCount: 24,
			wantFirst: TimeSlot{Start: "00:00", End: "01:00"},
			wantLast:  TimeSlot{Start: "23:00", End: "24:00"},
		},
		{
			name:      "interval shorter than a slot",
			open:      "09:30",
			close:     "10:00",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := GenerateSlots(tt.open, tt.close)
			require.NoError(t, err)
			require.Len(t, slots, tt.wantCount)

			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantFirst, slots[0])
				assert.Equal(t, tt.wantLast, slots[len(slots)-1])
			}
		})
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	first, err := GenerateSlots("06:00", "23:00")
	require.NoError(t, err)
	second, err := GenerateSlots("06:00", "23:00")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTimeSlot_RemainingMinutes(t *testing.T) {
	// Понедельник 2025-06-02
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	slot := TimeSlot{Start: "09:00", End: "10:00"}

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"slot entirely in the future", date.Add(8 * time.Hour), 60},
		{"now exactly at slot start", date.Add(9 * time.Hour), 60},
		{"slot begun, 45 minutes remain", date.Add(9*time.Hour + 15*time.Minute), 45},
		{"slot begun, 20 minutes remain", date.Add(9*time.Hour + 40*time.Minute), 20},
		{"now exactly at slot end", date.Add(10 * time.Hour), 0},
		{"slot fully elapsed", date.Add(11 * time.Hour), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := slot.RemainingMinutes(date, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeSlot_CountOverlappingBookings(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return date.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}

	slot := TimeSlot{Start: "11:00", End: "12:00"}

	tests := []struct {
		name     string
		bookings []*Booking
		want     int
	}{
		{
			name: "real overlap counts",
			bookings: []*Booking{
				{StartTime: at(10, 30), EndTime: at(11, 30), Status: StatusConfirmed},
			},
			want: 1,
		},
		{
			name: "touching boundaries do not overlap",
			bookings: []*Booking{
				{StartTime: at(10, 0), EndTime: at(11, 0), Status: StatusConfirmed},
				{StartTime: at(12, 0), EndTime: at(13, 0), Status: StatusPending},
			},
			want: 0,
		},
		{
			name: "cancelled and completed bookings never block",
			bookings: []*Booking{
				{StartTime: at(11, 0), EndTime: at(12, 0), Status: StatusCancelled},
				{StartTime: at(11, 0), EndTime: at(12, 0), Status: StatusCompleted},
			},
			want: 0,
		},
		{
			name: "pending, confirmed and active all block",
			bookings: []*Booking{
				{StartTime: at(11, 0), EndTime: at(12, 0), Status: StatusPending},
				{StartTime: at(10, 0), EndTime: at(14, 0), Status: StatusConfirmed},
				{StartTime: at(11, 30), EndTime: at(12, 30), Status: StatusActive},
			},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := slot.CountOverlappingBookings(date, tt.bookings)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
