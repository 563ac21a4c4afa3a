package lifecycle

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	spotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spot"
)

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*domain.Booking

	confirmCalls int
	rejectCalls  int
	statusCalls  []domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) ConfirmPayment(_ context.Context, id uuid.UUID) error {
	f.confirmCalls++
	f.bookings[id].Status = domain.StatusConfirmed
	f.bookings[id].PaymentStatus = domain.PaymentVerified
	return nil
}

func (f *fakeBookingRepo) RejectPayment(_ context.Context, id uuid.UUID, reason string) error {
	f.rejectCalls++
	f.bookings[id].Status = domain.StatusCancelled
	f.bookings[id].PaymentStatus = domain.PaymentRejected
	f.bookings[id].CancellationReason = &reason
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.BookingStatus) error {
	f.statusCalls = append(f.statusCalls, status)
	f.bookings[id].Status = status
	return nil
}

type fakeSpotRepo struct {
	available  int
	total      int
	decrements int
	increments int
}

func (f *fakeSpotRepo) DecrementAvailable(_ context.Context, _ uuid.UUID) error {
	if f.available <= 0 {
		return spotRepo.ErrNoFreeSlots
	}
	f.decrements++
	f.available--
	return nil
}

func (f *fakeSpotRepo) IncrementAvailable(_ context.Context, _ uuid.UUID) error {
	f.increments++
	if f.available < f.total {
		f.available++
	}
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newBooking(status domain.BookingStatus, payment domain.PaymentStatus) *domain.Booking {
	return &domain.Booking{
		ID:            uuid.New(),
		UserID:        100,
		SpotID:        uuid.New(),
		VehicleID:     1,
		Status:        status,
		PaymentStatus: payment,
	}
}

func newService(bookings *fakeBookingRepo, spots *fakeSpotRepo) *Service {
	return NewService(bookings, spots, fakeTxManager{}, nopLogger{})
}

func TestApplyVerification_Accepted(t *testing.T) {
	booking := newBooking(domain.StatusPending, domain.PaymentPending)
	repo := &fakeBookingRepo{bookings: map[uuid.UUID]*domain.Booking{booking.ID: booking}}
	svc := newService(repo, &fakeSpotRepo{available: 5, total: 5})

	result, err := svc.ApplyVerification(context.Background(), booking.ID, true, "")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, result.Status)
	assert.Equal(t, domain.PaymentVerified, result.PaymentStatus)
	assert.Equal(t, 1, repo.confirmCalls)
	assert.Equal(t, 0, repo.rejectCalls)
}

func TestApplyVerification_Rejected(t *testing.T) {
	booking := newBooking(domain.StatusPending, domain.PaymentPending)
	repo := &fakeBookingRepo{bookings: map[uuid.UUID]*domain.Booking{booking.ID: booking}}
	svc := newService(repo, &fakeSpotRepo{available: 5, total: 5})

	result, err := svc.ApplyVerification(context.Background(), booking.ID, false, "amount mismatch")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, result.Status)
	assert.Equal(t, domain.PaymentRejected, result.PaymentStatus)
	assert.Equal(t, 1, repo.rejectCalls)
}

func TestApplyVerification_InvalidTransition(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.BookingStatus
		payment domain.PaymentStatus
	}{
		{"already confirmed", domain.StatusConfirmed, domain.PaymentVerified},
		{"active", domain.StatusActive, domain.PaymentVerified},
		{"completed", domain.StatusCompleted, domain.PaymentVerified},
		{"cancelled", domain.StatusCancelled, domain.PaymentRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := newBooking(tt.status, tt.payment)
			repo := &fakeBookingRepo{bookings: map[uuid.UUID]*domain.Booking{booking.ID: booking}}
			svc := newService(repo, &fakeSpotRepo{available: 5, total: 5})

			_, err := svc.ApplyVerification(context.Background(), booking.ID, true, "")
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, 0, repo.confirmCalls)
		})
	}
}

func TestRegisterEntry(t *testing.T) {
	booking := newBooking(domain.StatusConfirmed, domain.PaymentVerified)
	repo := &fakeBookingRepo{bookings: map[uuid.UUID]*domain.Booking{booking.ID: booking}}
	spots := &fakeSpotRepo{available: 3, total: 5}
	svc := newService(repo, spots)

	result, err := svc.RegisterEntry(context.Background(), booking.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusActive, result.Status)
	assert.Equal(t, 2, spots.available)
	assert.Equal(t, 1, spots.decrements)
}

func TestRegisterEntry_SecondScanDoesNotDecrementTwice(t *testing.T) {
	booking := newBooking(domain.StatusConfirmed, domain.PaymentVerified)
	repo := &fakeBookingRepo{bookings: map[uuid.UUID]*domain.Booking{booking.ID: booking}}
	spots := &fakeSpotRepo{available: 3, total: 5}
	svc := newService(repo, spots)

	_, err := svc.RegisterEntry(context.Background(), booking.ID)
	require.NoError(t, err)

	// Повторное сканирование: бронирование уже active, счетчик не трогаем
	_, err = svc.RegisterEntry(context.Background(), booking.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 1, spots.decrements)
	assert.Equal(t, 2, spots.available)
}

func TestRegisterEntry_NoFreeSlots(t *testing.T) {
	booking := newBooking(domain.StatusConfirmed, domain.PaymentVerified)
	repo := &fakeBookingRepo{bookings: map[uuid.UUID]*domain.Booking{booking.ID: booking}}
	spots := &fakeSpotRepo{available: 0, total: 5}
	svc := newService(repo, spots)

	_, err := svc.RegisterEntry(context.Background(), booking.ID)
	assert.ErrorIs(t, err, ErrNoFreeSlots)

	// Статус бронирования не изменился
	assert.Empty(t, repo.statusCalls)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings[booking.ID].Status)
}

func TestRegisterEntry_PendingBookingRejected(t *testing.T) {
	booking := newBooking(domain.StatusPending, domain.PaymentPending)
	repo := &fakeBookingRepo{bookings: map[uuid.UUID]*domain.Booking{booking.ID: booking}}
	spots := &fakeSpotRepo{available: 3, total: 5}
	svc := newService(repo, spots)

	_, err := svc.RegisterEntry(context.Background(), booking.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 0, spots.decrements)
}

func TestRegisterExit(t *testing.T) {
	booking := newBooking(domain.StatusActive, domain.PaymentVerified)
	repo := &fakeBookingRepo{bookings: map[uuid.UUID]*domain.Booking{booking.ID: booking}}
	spots := &fakeSpotRepo{available: 2, total: 5}
	svc := newService(repo, spots)

	result, err := svc.RegisterExit(context.Background(), booking.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, result.Status)
	assert.Equal(t, 3, spots.available)
	assert.Equal(t, 1, spots.increments)
}

func TestRegisterExit_SecondScanIsNoop(t *testing.T) {
	booking := newBooking(domain.StatusActive, domain.PaymentVerified)
	repo := &fakeBookingRepo{bookings: map[uuid.UUID]*domain.Booking{booking.ID: booking}}
	spots := &fakeSpotRepo{available: 2, total: 5}
	svc := newService(repo, spots)

	_, err := svc.RegisterExit(context.Background(), booking.ID)
	require.NoError(t, err)

	_, err = svc.RegisterExit(context.Background(), booking.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 1, spots.increments)
	assert.Equal(t, 3, spots.available)
}

func TestRegisterEntry_BookingNotFound(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[uuid.UUID]*domain.Booking{}}
	svc := newService(repo, &fakeSpotRepo{available: 3, total: 5})

	_, err := svc.RegisterEntry(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
