package catalog

import (
	"context"
	"testing"

	"eventzen/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) Create(ctx context.Context, e *domain.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepo) List(ctx context.Context, limit, offset int) ([]domain.Event, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepo) Update(ctx context.Context, e *domain.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockVenueRepo struct {
	mock.Mock
}

func (m *MockVenueRepo) Create(ctx context.Context, v *domain.Venue) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVenueRepo) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

func (m *MockVenueRepo) List(ctx context.Context, limit, offset int) ([]domain.Venue, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Venue), args.Error(1)
}

func (m *MockVenueRepo) Update(ctx context.Context, v *domain.Venue) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVenueRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_GetEvent_NotFound(t *testing.T) {
	events := new(MockEventRepo)
	svc := NewService(events, new(MockVenueRepo))

	events.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	e, err := svc.GetEvent(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, e)
}

func TestService_GetVenue(t *testing.T) {
	venues := new(MockVenueRepo)
	svc := NewService(new(MockEventRepo), venues)

	venues.On("GetByID", mock.Anything, int64(3)).Return(&domain.Venue{ID: 3, Name: "Riverside Loft"}, nil)

	v, err := svc.GetVenue(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, "Riverside Loft", v.Name)
}

func TestService_DeleteEvent_NotFound(t *testing.T) {
	events := new(MockEventRepo)
	svc := NewService(events, new(MockVenueRepo))

	events.On("Delete", mock.Anything, int64(404)).Return(gorm.ErrRecordNotFound)

	err := svc.DeleteEvent(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
}
