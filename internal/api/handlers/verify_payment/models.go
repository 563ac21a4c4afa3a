package verify_payment

import (
	"github.com/google/uuid"

	verifyPayment "github.com/m04kA/SMC-ParkingService/internal/usecase/verify_payment"
)

// ManualVerifyRequest HTTP request model
type ManualVerifyRequest struct {
	OperatorID int64   `json:"operatorId"`
	Accepted   bool    `json:"accepted"`
	Reason     *string `json:"reason,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *ManualVerifyRequest) ToUseCaseRequest(slipID uuid.UUID) *verifyPayment.ManualVerifyRequest {
	reason := ""
	if r.Reason != nil {
		reason = *r.Reason
	}

	return &verifyPayment.ManualVerifyRequest{
		OperatorID: r.OperatorID,
		SlipID:     slipID,
		Accepted:   r.Accepted,
		Reason:     reason,
	}
}
