package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetSpotBookingsRequest запрос на получение бронирований парковки
type GetSpotBookingsRequest struct {
	UserID          int64      `json:"userId"`
	SpotID          uuid.UUID  `json:"spotId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить завершенные и отмененные
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetSpotBookingsRequest) ToDomainFilter() (domain.SpotBookingsFilter, error) {
	filter := domain.SpotBookingsFilter{
		SpotID:          r.SpotID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        int64     `json:"userId"`
	SpotID        uuid.UUID `json:"spotId"`
	VehicleID     int64     `json:"vehicleId"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	TotalCost     float64   `json:"totalCost"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`

	QRCode string `json:"qrCode"`
	PIN    string `json:"pin"`

	// Денормализованные данные
	SpotName     string  `json:"spotName"`
	VehiclePlate *string `json:"vehiclePlate,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	ConfirmedAt        *string `json:"confirmedAt,omitempty"` // ISO 8601 format
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		SpotID:             b.SpotID,
		VehicleID:          b.VehicleID,
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		TotalCost:          b.TotalCost,
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		QRCode:             b.QRCode,
		PIN:                b.PIN,
		SpotName:           b.SpotName,
		VehiclePlate:       b.VehiclePlate,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем временные метки в строки ISO 8601
	if b.ConfirmedAt != nil {
		confirmedStr := b.ConfirmedAt.Format(time.RFC3339)
		resp.ConfirmedAt = &confirmedStr
	}
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	// Валидируем статус
	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusActive,
		domain.StatusCompleted,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
