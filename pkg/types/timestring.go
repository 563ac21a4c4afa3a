package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// MinutesPerDay количество минут в сутках
// Значение "24:00" допустимо как время закрытия (конец дня, не начало следующего)
const MinutesPerDay = 24 * 60

// ErrInvalidTimeString возвращается при некорректном формате строки времени
var ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")

// TimeString время в формате "HH:MM" без привязки к дате
// Хранится в БД как строка, арифметика выполняется в минутах от начала суток
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString
// Допускает сентинельное значение "24:00" (конец суток)
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут от начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > MinutesPerDay {
		return "", fmt.Errorf("%w: %d minutes is out of day range", ErrInvalidTimeString, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate проверяет формат "HH:MM" (от "00:00" до "24:00" включительно)
func (t TimeString) Validate() error {
	_, err := t.Minutes()
	return err
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	var hours, minutes int
	if _, err := fmt.Sscanf(string(t), "%2d:%2d", &hours, &minutes); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, t)
	}
	if len(t) != 5 || t[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, t)
	}
	if minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, t)
	}
	total := hours*60 + minutes
	if total < 0 || total > MinutesPerDay {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, t)
	}
	return total, nil
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
// Результат не может выходить за пределы суток ("24:00" - максимум)
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(current + minutes)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// OnDate совмещает время с календарной датой в указанной локации
// "24:00" трактуется как 00:00 следующего дня
func (t TimeString) OnDate(date time.Time) (time.Time, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return day.Add(time.Duration(minutes) * time.Minute), nil
}

// Value реализует driver.Valuer для сохранения в БД
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}
	// Колонки типа TIME приходят как "HH:MM:SS" - обрезаем секунды
	if len(*t) == 8 {
		*t = (*t)[:5]
	}
	return t.Validate()
}
