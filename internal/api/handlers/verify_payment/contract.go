package verify_payment

import (
	"context"

	verifyPayment "github.com/m04kA/SMC-ParkingService/internal/usecase/verify_payment"
)

type VerifyPaymentUseCase interface {
	ManualVerify(ctx context.Context, req *verifyPayment.ManualVerifyRequest) (*verifyPayment.SlipResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
