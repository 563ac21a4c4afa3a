package scan_access

import (
	"github.com/google/uuid"

	scanAccess "github.com/m04kA/SMC-ParkingService/internal/usecase/scan_access"
)

// ScanRequest HTTP request model
type ScanRequest struct {
	OperatorID int64  `json:"operatorId"`
	Code       string `json:"code"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *ScanRequest) ToUseCaseRequest(spotID uuid.UUID) *scanAccess.Request {
	return &scanAccess.Request{
		OperatorID: r.OperatorID,
		SpotID:     spotID,
		Code:       r.Code,
	}
}
