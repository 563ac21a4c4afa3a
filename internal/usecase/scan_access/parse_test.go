package scan_access

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func TestParseCredential_PIN(t *testing.T) {
	parsed := parseCredential("1234")

	assert.Equal(t, credentialPIN, parsed.kind)
	assert.Equal(t, "1234", parsed.pin)

	// Пробелы вокруг кода не мешают распознаванию
	parsed = parseCredential("  4821 ")
	assert.Equal(t, credentialPIN, parsed.kind)
	assert.Equal(t, "4821", parsed.pin)
}

func TestParseCredential_StructuredPayload(t *testing.T) {
	bookingID := uuid.New()
	spotID := uuid.New()

	encoded, err := domain.NewQRPayload(bookingID, spotID, time.Now()).Encode()
	require.NoError(t, err)

	parsed := parseCredential(encoded)

	require.Equal(t, credentialPayload, parsed.kind)
	assert.Equal(t, bookingID, parsed.payload.BookingID)
	assert.Equal(t, spotID, parsed.payload.SpotID)
}

func TestParseCredential_FlatCode(t *testing.T) {
	flat := uuid.NewString()

	parsed := parseCredential(flat)

	assert.Equal(t, credentialFlatCode, parsed.kind)
	assert.Equal(t, flat, parsed.flat)
}

func TestParseCredential_JSONOfWrongTypeIsFlatCode(t *testing.T) {
	// JSON, не являющийся payload верификации, трактуется как плоский токен
	parsed := parseCredential(`{"type":"loyalty_card","id":42}`)

	assert.Equal(t, credentialFlatCode, parsed.kind)
}

func TestParseCredential_Empty(t *testing.T) {
	assert.Equal(t, credentialUnknown, parseCredential("").kind)
	assert.Equal(t, credentialUnknown, parseCredential("   ").kind)
}

func TestParseCredential_FiveDigitsIsNotPIN(t *testing.T) {
	parsed := parseCredential("12345")

	assert.Equal(t, credentialFlatCode, parsed.kind)
}
