package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusActive    BookingStatus = "active"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment verification status of a booking
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentVerified PaymentStatus = "verified"
	PaymentRejected PaymentStatus = "rejected"
)

// Booking represents a parking reservation in the system
type Booking struct {
	ID        uuid.UUID
	UserID    int64
	SpotID    uuid.UUID
	VehicleID int64

	StartTime time.Time
	EndTime   time.Time
	TotalCost float64

	Status        BookingStatus
	PaymentStatus PaymentStatus

	// Access credentials, issued at creation
	QRCode string
	PIN    string

	// Denormalized data for history
	SpotName     string
	VehiclePlate *string
	Notes        *string

	ConfirmedAt        *time.Time
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies slot capacity
// (blocks other reservations on the same interval)
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending ||
		b.Status == StatusConfirmed ||
		b.Status == StatusActive
}

// IsTerminal returns true if the booking reached a terminal state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanEnter returns true if an entry scan is valid for the booking
func (b *Booking) CanEnter() bool {
	return b.Status == StatusConfirmed
}

// CanExit returns true if an exit scan is valid for the booking
func (b *Booking) CanExit() bool {
	return b.Status == StatusActive
}

// Overlaps reports whether the booking interval overlaps [start, end)
// Half-open test: touching boundaries do not overlap
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}

// SpotBookingsFilter фильтр для получения бронирований парковки
type SpotBookingsFilter struct {
	SpotID          uuid.UUID      // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли завершенные и отмененные бронирования
}
