package submit_payment_slip

import (
	"github.com/google/uuid"

	verifyPayment "github.com/m04kA/SMC-ParkingService/internal/usecase/verify_payment"
)

// SubmitSlipRequest HTTP request model
type SubmitSlipRequest struct {
	UserID   int64  `json:"userId"`
	ImageURL string `json:"imageUrl"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *SubmitSlipRequest) ToUseCaseRequest(bookingID uuid.UUID) *verifyPayment.SubmitSlipRequest {
	return &verifyPayment.SubmitSlipRequest{
		UserID:    r.UserID,
		BookingID: bookingID,
		ImageURL:  r.ImageURL,
	}
}
