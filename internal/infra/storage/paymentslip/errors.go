package paymentslip

import "errors"

var (
	// ErrSlipNotFound возвращается, когда платежный документ не найден
	ErrSlipNotFound = errors.New("paymentslip.repository: payment slip not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("paymentslip.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("paymentslip.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("paymentslip.repository: failed to scan row")
)
