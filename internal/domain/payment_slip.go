package domain

import (
	"time"

	"github.com/google/uuid"
)

// SlipStatus represents the verification status of a payment slip
type SlipStatus string

const (
	SlipPending  SlipStatus = "pending"
	SlipVerified SlipStatus = "verified"
	SlipRejected SlipStatus = "rejected"
)

// PaymentSlip represents an uploaded proof-of-payment document
type PaymentSlip struct {
	ID        uuid.UUID
	BookingID uuid.UUID

	// ImageURL is an opaque handle to the uploaded image; storage is external
	ImageURL string
	Status   SlipStatus

	// OCR-derived fields, populated after automatic analysis
	OCRText       *string
	OCRConfidence *float64
	OCRVerified   bool

	// Manual decision audit trail
	VerifiedBy *int64
	VerifiedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true if the slip still awaits a decision
func (s *PaymentSlip) IsPending() bool {
	return s.Status == SlipPending
}

// VerificationVerdict is the outcome of analyzing a slip against the
// booking's expected cost. The verdict never mutates booking state itself;
// the lifecycle service consumes it.
type VerificationVerdict struct {
	Verified   bool
	Confidence float64
	Notes      string
}
