package verify_payment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SubmitSlipRequest запрос на загрузку платежного документа
type SubmitSlipRequest struct {
	UserID    int64     // ID пользователя, загрузившего документ
	BookingID uuid.UUID // ID бронирования
	ImageURL  string    // Ссылка на загруженное изображение
}

// ManualVerifyRequest запрос на ручную проверку платежного документа
type ManualVerifyRequest struct {
	OperatorID int64     // ID оператора парковки
	SlipID     uuid.UUID // ID платежного документа
	Accepted   bool      // Решение оператора
	Reason     string    // Причина отклонения (для Accepted=false)
}

// SlipResponse ответ с платежным документом и статусом бронирования
type SlipResponse struct {
	ID        uuid.UUID `json:"id"`
	BookingID uuid.UUID `json:"bookingId"`
	ImageURL  string    `json:"imageUrl"`
	Status    string    `json:"status"`

	OCRText       *string  `json:"ocrText,omitempty"`
	OCRConfidence *float64 `json:"ocrConfidence,omitempty"`
	OCRVerified   bool     `json:"ocrVerified"`

	VerifiedBy *int64  `json:"verifiedBy,omitempty"`
	VerifiedAt *string `json:"verifiedAt,omitempty"` // ISO 8601 format

	// Статус бронирования после применения вердикта
	BookingStatus        string `json:"bookingStatus"`
	BookingPaymentStatus string `json:"bookingPaymentStatus"`

	CreatedAt time.Time `json:"createdAt"`
}

func toSlipResponse(slip *domain.PaymentSlip, booking *domain.Booking) *SlipResponse {
	resp := &SlipResponse{
		ID:                   slip.ID,
		BookingID:            slip.BookingID,
		ImageURL:             slip.ImageURL,
		Status:               string(slip.Status),
		OCRText:              slip.OCRText,
		OCRConfidence:        slip.OCRConfidence,
		OCRVerified:          slip.OCRVerified,
		VerifiedBy:           slip.VerifiedBy,
		BookingStatus:        string(booking.Status),
		BookingPaymentStatus: string(booking.PaymentStatus),
		CreatedAt:            slip.CreatedAt,
	}

	if slip.VerifiedAt != nil {
		verifiedStr := slip.VerifiedAt.Format(time.RFC3339)
		resp.VerifiedAt = &verifiedStr
	}

	return resp
}
