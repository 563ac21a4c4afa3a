package save_draft

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

func validDraftRequest() *Request {
	return &Request{
		UserID:     1,
		SpotID:     uuid.UUID{1},
		Date:       time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		SlotStarts: []types.TimeString{"10:00", "11:00"},
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"valid", func(r *Request) {}, nil},
		{"missing user", func(r *Request) { r.UserID = 0 }, ErrInvalidInput},
		{"missing spot", func(r *Request) { r.SpotID = uuid.Nil }, ErrInvalidInput},
		{"missing date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidInput},
		{"no slots", func(r *Request) { r.SlotStarts = nil }, ErrInvalidInput},
		{"bad time format", func(r *Request) { r.SlotStarts = []types.TimeString{"25:99"} }, ErrInvalidInput},
		{"gap", func(r *Request) { r.SlotStarts = []types.TimeString{"10:00", "12:00"} }, ErrNonConsecutiveSlots},
		{"duplicate", func(r *Request) { r.SlotStarts = []types.TimeString{"10:00", "10:00"} }, ErrNonConsecutiveSlots},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validDraftRequest()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateRequest_SlotOrderDoesNotMatter(t *testing.T) {
	// Непрерывность проверяется по отсортированным началам
	req := validDraftRequest()
	req.SlotStarts = []types.TimeString{"11:00", "09:00", "10:00"}

	assert.NoError(t, validateRequest(req))

	// Порядок в запросе сохраняется как есть
	assert.Equal(t, []types.TimeString{"11:00", "09:00", "10:00"}, req.SlotStarts)
}
