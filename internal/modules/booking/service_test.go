package booking

import (
	"context"
	"testing"
	"time"

	"eventzen/internal/domain"
	"eventzen/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateEventReserved(ctx context.Context, b *domain.Booking, capacity int) error {
	args := m.Called(ctx, b, capacity)
	if args.Error(0) == nil && b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) CreateVenueReserved(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil && b != nil {
		b.ID = 999
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

type MockEventReader struct {
	mock.Mock
}

func (m *MockEventReader) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

type MockVenueReader struct {
	mock.Mock
}

func (m *MockVenueReader) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyBookingCreated(ctx context.Context, userID, bookingID int64, totalAmount float64) error {
	args := m.Called(ctx, userID, bookingID, totalAmount)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingCancelled(ctx context.Context, userID, bookingID int64) error {
	args := m.Called(ctx, userID, bookingID)
	return args.Error(0)
}

func newTestService() (*Service, *MockBookingRepository, *MockEventReader, *MockVenueReader, *MockNotificationSender) {
	bookings := new(MockBookingRepository)
	events := new(MockEventReader)
	venues := new(MockVenueReader)
	notifs := new(MockNotificationSender)
	return NewService(bookings, events, venues, notifs), bookings, events, venues, notifs
}

func TestService_CreateEventBooking_Success(t *testing.T) {
	svc, bookings, events, _, notifs := newTestService()

	events.On("GetByID", mock.Anything, int64(1)).Return(&domain.Event{
		ID:       1,
		Name:     "Jazz Evening",
		Price:    150.00,
		Capacity: 200,
	}, nil)
	bookings.On("CreateEventReserved", mock.Anything, mock.Anything, 200).Return(nil)
	notifs.On("NotifyBookingCreated", mock.Anything, int64(7), int64(999), 300.0).Return(nil)

	b, err := svc.CreateEventBooking(context.Background(), 7, CreateEventBookingRequest{
		EventID:     1,
		TicketCount: 2,
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, 300.0, b.TotalAmount)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
	assert.Equal(t, 2, b.TicketCount)
	assert.NotNil(t, b.EventID)
	assert.Nil(t, b.VenueID)
	notifs.AssertCalled(t, "NotifyBookingCreated", mock.Anything, int64(7), int64(999), 300.0)
}

func TestService_CreateEventBooking_DefaultTicketCount(t *testing.T) {
	svc, bookings, events, _, notifs := newTestService()

	events.On("GetByID", mock.Anything, int64(1)).Return(&domain.Event{
		ID: 1, Price: 25.00, Capacity: 60,
	}, nil)
	bookings.On("CreateEventReserved", mock.Anything, mock.Anything, 60).Return(nil)
	notifs.On("NotifyBookingCreated", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	b, err := svc.CreateEventBooking(context.Background(), 7, CreateEventBookingRequest{EventID: 1})

	assert.NoError(t, err)
	assert.Equal(t, 1, b.TicketCount)
	assert.Equal(t, 25.0, b.TotalAmount)
}

func TestService_CreateEventBooking_EventNotFound(t *testing.T) {
	svc, bookings, events, _, _ := newTestService()

	events.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	b, err := svc.CreateEventBooking(context.Background(), 7, CreateEventBookingRequest{EventID: 404})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, b)
	bookings.AssertNotCalled(t, "CreateEventReserved", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CreateEventBooking_CapacityExceeded(t *testing.T) {
	svc, bookings, events, _, _ := newTestService()

	events.On("GetByID", mock.Anything, int64(1)).Return(&domain.Event{
		ID: 1, Price: 40.00, Capacity: 3,
	}, nil)
	bookings.On("CreateEventReserved", mock.Anything, mock.Anything, 3).
		Return(repository.ErrCapacityExceeded)

	b, err := svc.CreateEventBooking(context.Background(), 7, CreateEventBookingRequest{
		EventID:     1,
		TicketCount: 5,
	})

	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Nil(t, b)
}

func TestService_CreateEventBooking_IgnoresClientAmount(t *testing.T) {
	// The request type carries no amount field at all; the total always
	// comes from the stored event price.
	svc, bookings, events, _, notifs := newTestService()

	events.On("GetByID", mock.Anything, int64(1)).Return(&domain.Event{
		ID: 1, Price: 150.00, Capacity: 200,
	}, nil)
	bookings.On("CreateEventReserved", mock.Anything, mock.Anything, 200).Return(nil)
	notifs.On("NotifyBookingCreated", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	b, err := svc.CreateEventBooking(context.Background(), 7, CreateEventBookingRequest{
		EventID:     1,
		TicketCount: 2,
	})

	assert.NoError(t, err)
	assert.Equal(t, 300.0, b.TotalAmount)
}

func TestService_CreateVenueBooking_Success(t *testing.T) {
	svc, bookings, _, venues, notifs := newTestService()

	venues.On("GetByID", mock.Anything, int64(3)).Return(&domain.Venue{
		ID: 3, Name: "Riverside Loft", Price: 85.50, Capacity: 80,
	}, nil)
	bookings.On("CreateVenueReserved", mock.Anything, mock.Anything).Return(nil)
	notifs.On("NotifyBookingCreated", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	date := time.Now().Add(48 * time.Hour)
	b, err := svc.CreateVenueBooking(context.Background(), 7, CreateVenueBookingRequest{
		VenueID:         3,
		BookingDate:     date,
		BookingDuration: 4,
		AttendeeCount:   30,
	})

	assert.NoError(t, err)
	assert.Equal(t, 342.0, b.TotalAmount)
	assert.Equal(t, 4, b.BookingDuration)
	assert.Nil(t, b.EventID)
	assert.NotNil(t, b.VenueID)
	assert.Equal(t, domain.BookingPending, b.Status)
}

func TestService_CreateVenueBooking_DurationOutOfRange(t *testing.T) {
	svc, bookings, _, venues, _ := newTestService()

	date := time.Now().Add(48 * time.Hour)
	for _, duration := range []int{0, -1, 13} {
		b, err := svc.CreateVenueBooking(context.Background(), 7, CreateVenueBookingRequest{
			VenueID:         3,
			BookingDate:     date,
			BookingDuration: duration,
			AttendeeCount:   10,
		})
		assert.ErrorIs(t, err, ErrValidation)
		assert.Nil(t, b)
	}
	venues.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	bookings.AssertNotCalled(t, "CreateVenueReserved", mock.Anything, mock.Anything)
}

func TestService_CreateVenueBooking_TooManyAttendees(t *testing.T) {
	svc, bookings, _, venues, _ := newTestService()

	venues.On("GetByID", mock.Anything, int64(3)).Return(&domain.Venue{
		ID: 3, Price: 85.50, Capacity: 80,
	}, nil)

	b, err := svc.CreateVenueBooking(context.Background(), 7, CreateVenueBookingRequest{
		VenueID:         3,
		BookingDate:     time.Now().Add(48 * time.Hour),
		BookingDuration: 4,
		AttendeeCount:   81,
	})

	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Nil(t, b)
	bookings.AssertNotCalled(t, "CreateVenueReserved", mock.Anything, mock.Anything)
}

func TestService_CreateVenueBooking_SlotTaken(t *testing.T) {
	svc, bookings, _, venues, _ := newTestService()

	venues.On("GetByID", mock.Anything, int64(3)).Return(&domain.Venue{
		ID: 3, Price: 85.50, Capacity: 80,
	}, nil)
	bookings.On("CreateVenueReserved", mock.Anything, mock.Anything).Return(repository.ErrSlotTaken)

	b, err := svc.CreateVenueBooking(context.Background(), 7, CreateVenueBookingRequest{
		VenueID:         3,
		BookingDate:     time.Now().Add(48 * time.Hour),
		BookingDuration: 2,
		AttendeeCount:   10,
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, b)
}

func TestService_UpdateStatus_Cancel(t *testing.T) {
	svc, bookings, _, _, notifs := newTestService()

	eventID := int64(1)
	pending := &domain.Booking{
		ID:            42,
		UserID:        7,
		EventID:       &eventID,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentPending,
	}
	cancelled := &domain.Booking{
		ID:            42,
		UserID:        7,
		EventID:       &eventID,
		Status:        domain.BookingCancelled,
		PaymentStatus: domain.PaymentPending,
	}

	bookings.On("GetByID", mock.Anything, int64(42)).Return(pending, nil).Once()
	bookings.On("UpdateStatus", mock.Anything, int64(42), domain.BookingCancelled).Return(nil)
	bookings.On("GetByID", mock.Anything, int64(42)).Return(cancelled, nil).Once()
	notifs.On("NotifyBookingCancelled", mock.Anything, int64(7), int64(42)).Return(nil)

	b, err := svc.UpdateStatus(context.Background(), 42, 7, domain.BookingCancelled)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
	// cancellation never touches the payment status
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
}

func TestService_UpdateStatus_CancelCompletedRejected(t *testing.T) {
	svc, bookings, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(42)).Return(&domain.Booking{
		ID: 42, UserID: 7, Status: domain.BookingCompleted,
	}, nil)

	b, err := svc.UpdateStatus(context.Background(), 42, 7, domain.BookingCancelled)

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Nil(t, b)
	bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_ForeignBookingForbidden(t *testing.T) {
	svc, bookings, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(42)).Return(&domain.Booking{
		ID: 42, UserID: 8, Status: domain.BookingPending,
	}, nil)

	b, err := svc.UpdateStatus(context.Background(), 42, 7, domain.BookingCancelled)

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, b)
}

func TestService_UpdateStatus_OnlyCancellationExposed(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	b, err := svc.UpdateStatus(context.Background(), 42, 7, domain.BookingConfirmed)

	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, b)
}
