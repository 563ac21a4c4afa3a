package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// DaySchedule represents the operating hours of a spot for one weekday
type DaySchedule struct {
	IsOpen    bool    `json:"isOpen"`
	Is24Hours bool    `json:"is24Hours"`
	OpenTime  *string `json:"open,omitempty"`
	CloseTime *string `json:"close,omitempty"`
}

// DayHours is the resolved open interval for a concrete calendar date
type DayHours struct {
	IsOpen bool
	Open   types.TimeString
	Close  types.TimeString
}

// WeekSchedule maps weekday names to their operating hours.
// Keys are normalized (lowercase, trimmed) on deserialization, so schedules
// produced with keys like " Monday " still resolve.
type WeekSchedule map[string]DaySchedule

// NormalizeWeekday normalizes a weekday key for schedule lookup
func NormalizeWeekday(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// UnmarshalJSON parses the schedule normalizing weekday keys
func (w *WeekSchedule) UnmarshalJSON(data []byte) error {
	raw := make(map[string]DaySchedule)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	normalized := make(WeekSchedule, len(raw))
	for key, day := range raw {
		normalized[NormalizeWeekday(key)] = day
	}
	*w = normalized
	return nil
}

// ResolveDay resolves operating hours for the weekday of the given date.
// A day flagged 24-hours overrides its open/close strings with 00:00-24:00.
// A missing day, isOpen=false or unparseable times resolve to closed.
func (w WeekSchedule) ResolveDay(date time.Time) DayHours {
	day, ok := w[NormalizeWeekday(date.Weekday().String())]
	if !ok || !day.IsOpen {
		return DayHours{IsOpen: false}
	}

	if day.Is24Hours {
		return DayHours{IsOpen: true, Open: DayStart, Close: DayEnd}
	}

	if day.OpenTime == nil || day.CloseTime == nil {
		return DayHours{IsOpen: false}
	}

	open, err := types.NewTimeStringFromString(strings.TrimSpace(*day.OpenTime))
	if err != nil {
		return DayHours{IsOpen: false}
	}
	close, err := types.NewTimeStringFromString(strings.TrimSpace(*day.CloseTime))
	if err != nil {
		return DayHours{IsOpen: false}
	}
	if !open.IsBefore(close) {
		return DayHours{IsOpen: false}
	}

	return DayHours{IsOpen: true, Open: open, Close: close}
}
