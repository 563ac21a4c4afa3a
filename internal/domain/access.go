package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
)

// QRPayloadType marks a structured parking verification payload
const QRPayloadType = "parking_verification"

// PIN bounds: exactly 4 ASCII digits, 1000-9999
const (
	pinRange = 9000
	pinBase  = 1000
)

// ErrNotQRPayload возвращается, когда отсканированная строка не является
// структурированным QR-payload (legacy плоский формат или мусор)
var ErrNotQRPayload = errors.New("domain: scanned value is not a structured qr payload")

// QRPayload is the structured content encoded into a booking's QR image
type QRPayload struct {
	Type      string    `json:"type"`
	BookingID uuid.UUID `json:"bookingId"`
	SpotID    uuid.UUID `json:"spotId"`
	Timestamp time.Time `json:"timestamp"`
}

// NewQRPayload builds the payload for a booking
func NewQRPayload(bookingID, spotID uuid.UUID, issuedAt time.Time) QRPayload {
	return QRPayload{
		Type:      QRPayloadType,
		BookingID: bookingID,
		SpotID:    spotID,
		Timestamp: issuedAt.UTC(),
	}
}

// Encode serializes the payload to its JSON wire form
func (p QRPayload) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("domain: failed to encode qr payload: %w", err)
	}
	return string(data), nil
}

// DecodeQRPayload parses a scanned string as a structured QR payload.
// Returns ErrNotQRPayload for anything that is not a payload of the expected
// type, so callers can fall back to legacy flat-code resolution.
func DecodeQRPayload(scanned string) (*QRPayload, error) {
	var payload QRPayload
	if err := json.Unmarshal([]byte(scanned), &payload); err != nil {
		return nil, ErrNotQRPayload
	}
	if payload.Type != QRPayloadType {
		return nil, ErrNotQRPayload
	}
	if payload.BookingID == uuid.Nil {
		return nil, ErrNotQRPayload
	}
	return &payload, nil
}

// NewQRCode issues an opaque flat access token, unique per booking.
// Kept resolvable as-is for backward compatibility with legacy QR images.
func NewQRCode() string {
	return uuid.NewString()
}

// GeneratePIN derives a stable 4-digit PIN from the booking and spot
// identifiers. Deterministic so a lost PIN can be re-derived.
func GeneratePIN(bookingID, spotID uuid.UUID) string {
	h := fnv.New64a()
	h.Write([]byte(bookingID.String()))
	h.Write([]byte(":"))
	h.Write([]byte(spotID.String()))
	return fmt.Sprintf("%04d", h.Sum64()%pinRange+pinBase)
}

// IsPIN reports whether the scanned string looks like a 4-digit PIN
func IsPIN(scanned string) bool {
	if len(scanned) != 4 {
		return false
	}
	for _, c := range scanned {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
