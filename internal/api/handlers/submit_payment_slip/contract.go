package submit_payment_slip

import (
	"context"

	verifyPayment "github.com/m04kA/SMC-ParkingService/internal/usecase/verify_payment"
)

type VerifyPaymentUseCase interface {
	SubmitSlip(ctx context.Context, req *verifyPayment.SubmitSlipRequest) (*verifyPayment.SlipResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
