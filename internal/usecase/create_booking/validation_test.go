package create_booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

func TestBuildConsecutiveSlots(t *testing.T) {
	tests := []struct {
		name    string
		starts  []types.TimeString
		wantErr error
	}{
		{"single slot", []types.TimeString{"10:00"}, nil},
		{"two consecutive", []types.TimeString{"10:00", "11:00"}, nil},
		{"three consecutive", []types.TimeString{"10:00", "11:00", "12:00"}, nil},
		{"last slot of day", []types.TimeString{"23:00"}, nil},
		{"reversed order", []types.TimeString{"11:00", "10:00"}, nil},
		{"shuffled order", []types.TimeString{"12:00", "10:00", "11:00"}, nil},
		{"gap", []types.TimeString{"10:00", "12:00"}, ErrNonConsecutiveSlots},
		{"duplicate", []types.TimeString{"10:00", "10:00"}, ErrNonConsecutiveSlots},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := buildConsecutiveSlots(tt.starts)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, slots, len(tt.starts))

			expected := sortedSlotStarts(tt.starts)
			for i, slot := range slots {
				assert.Equal(t, expected[i], slot.Start)
				end, addErr := expected[i].AddMinutes(domain.SlotDurationMinutes)
				require.NoError(t, addErr)
				assert.Equal(t, end, slot.End)
			}
		})
	}
}

func TestBuildConsecutiveSlots_OrderIndependent(t *testing.T) {
	// Клиент может прислать времена в любом порядке, цепочка собирается
	// по отсортированным началам
	slots, err := buildConsecutiveSlots([]types.TimeString{"10:00", "09:00"})
	require.NoError(t, err)
	require.Len(t, slots, 2)

	assert.Equal(t, types.TimeString("09:00"), slots[0].Start)
	assert.Equal(t, types.TimeString("10:00"), slots[0].End)
	assert.Equal(t, types.TimeString("10:00"), slots[1].Start)
	assert.Equal(t, types.TimeString("11:00"), slots[1].End)

	// Исходный slice запроса не переупорядочивается
	original := []types.TimeString{"10:00", "09:00"}
	_, err = buildConsecutiveSlots(original)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "09:00"}, original)
}

func TestBuildConsecutiveSlots_LastSlotEndsAtDayEnd(t *testing.T) {
	slots, err := buildConsecutiveSlots([]types.TimeString{"22:00", "23:00"})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("24:00"), slots[1].End)
}

func TestValidateSlotsWithinHours(t *testing.T) {
	hours := domain.DayHours{IsOpen: true, Open: "08:00", Close: "20:00"}

	inRange, err := buildConsecutiveSlots([]types.TimeString{"08:00", "09:00"})
	require.NoError(t, err)
	assert.NoError(t, validateSlotsWithinHours(inRange, hours))

	tooEarly, err := buildConsecutiveSlots([]types.TimeString{"07:00"})
	require.NoError(t, err)
	assert.ErrorIs(t, validateSlotsWithinHours(tooEarly, hours), ErrSlotUnavailable)

	// Слот 19:00-20:00 помещается, 20:00-21:00 - нет
	lastFit, err := buildConsecutiveSlots([]types.TimeString{"19:00"})
	require.NoError(t, err)
	assert.NoError(t, validateSlotsWithinHours(lastFit, hours))

	tooLate, err := buildConsecutiveSlots([]types.TimeString{"20:00"})
	require.NoError(t, err)
	assert.ErrorIs(t, validateSlotsWithinHours(tooLate, hours), ErrSlotUnavailable)
}

func TestValidateSlotsSelectable(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	slots, err := buildConsecutiveSlots([]types.TimeString{"10:00", "11:00"})
	require.NoError(t, err)

	// Накануне - все слоты доступны
	assert.NoError(t, validateSlotsSelectable(slots, date, date.AddDate(0, 0, -1)))

	// 10:20 - у первого слота осталось 40 минут, цепочка доступна
	now := time.Date(2025, 6, 2, 10, 20, 0, 0, time.UTC)
	assert.NoError(t, validateSlotsSelectable(slots, date, now))

	// 10:45 - у первого слота осталось 15 минут, меньше минимума
	now = time.Date(2025, 6, 2, 10, 45, 0, 0, time.UTC)
	assert.ErrorIs(t, validateSlotsSelectable(slots, date, now), ErrSlotUnavailable)

	// 12:30 - оба слота прошли
	now = time.Date(2025, 6, 2, 12, 30, 0, 0, time.UTC)
	assert.ErrorIs(t, validateSlotsSelectable(slots, date, now), ErrSlotUnavailable)
}

func TestPriceSlots(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	slots, err := buildConsecutiveSlots([]types.TimeString{"10:00", "11:00"})
	require.NoError(t, err)

	t.Run("future slots cost full price", func(t *testing.T) {
		now := date.AddDate(0, 0, -1)

		priced, total, err := priceSlots(slots, 20, date, now)
		require.NoError(t, err)

		assert.Equal(t, 20.0, priced[0].Price)
		assert.Equal(t, 20.0, priced[1].Price)
		assert.Equal(t, 40.0, total)
	})

	t.Run("begun slot is prorated", func(t *testing.T) {
		// 10:15 - у первого слота осталось 45 минут
		// half=10, price=ceil(10 + (45-30)/30*10) = ceil(15) = 15
		now := time.Date(2025, 6, 2, 10, 15, 0, 0, time.UTC)

		priced, total, err := priceSlots(slots, 20, date, now)
		require.NoError(t, err)

		assert.Equal(t, 15.0, priced[0].Price)
		assert.Equal(t, 20.0, priced[1].Price)
		assert.Equal(t, 35.0, total)
	})

	t.Run("total is rounded up", func(t *testing.T) {
		// price=25: half=12.5, остаток 40 минут: ceil(12.5 + 10/30*12.5) = ceil(16.67) = 17
		now := time.Date(2025, 6, 2, 10, 20, 0, 0, time.UTC)

		priced, total, err := priceSlots(slots, 25, date, now)
		require.NoError(t, err)

		assert.Equal(t, 17.0, priced[0].Price)
		assert.Equal(t, 25.0, priced[1].Price)
		assert.Equal(t, 42.0, total)
	})
}

func TestValidateRequest(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	valid := &Request{
		UserID:     100,
		SpotID:     uuid.UUID{1},
		Date:       date,
		SlotStarts: []types.TimeString{"10:00"},
	}
	assert.NoError(t, validateRequest(valid))

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"zero user", func(r *Request) { r.UserID = 0 }},
		{"nil spot", func(r *Request) { r.SpotID = uuid.Nil }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"no slots", func(r *Request) { r.SlotStarts = nil }},
		{"bad slot format", func(r *Request) { r.SlotStarts = []types.TimeString{"25:99"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := *valid
			req.SlotStarts = append([]types.TimeString(nil), valid.SlotStarts...)
			tt.mutate(&req)
			assert.ErrorIs(t, validateRequest(&req), ErrInvalidInput)
		})
	}
}
