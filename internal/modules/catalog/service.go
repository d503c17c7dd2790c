package catalog

import (
	"context"
	"errors"

	"eventzen/internal/domain"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

type eventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context, limit, offset int) ([]domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id int64) error
}

type venueRepo interface {
	Create(ctx context.Context, v *domain.Venue) error
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	List(ctx context.Context, limit, offset int) ([]domain.Venue, error)
	Update(ctx context.Context, v *domain.Venue) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	events eventRepo
	venues venueRepo
}

func NewService(events eventRepo, venues venueRepo) *Service {
	return &Service{events: events, venues: venues}
}

func (s *Service) ListEvents(ctx context.Context, limit, offset int) ([]domain.Event, error) {
	return s.events.List(ctx, limit, offset)
}

func (s *Service) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) CreateEvent(ctx context.Context, e *domain.Event) error {
	return s.events.Create(ctx, e)
}

func (s *Service) UpdateEvent(ctx context.Context, e *domain.Event) error {
	if err := s.events.Update(ctx, e); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.events.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListVenues(ctx context.Context, limit, offset int) ([]domain.Venue, error) {
	return s.venues.List(ctx, limit, offset)
}

func (s *Service) GetVenue(ctx context.Context, id int64) (*domain.Venue, error) {
	v, err := s.venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) CreateVenue(ctx context.Context, v *domain.Venue) error {
	return s.venues.Create(ctx, v)
}

func (s *Service) UpdateVenue(ctx context.Context, v *domain.Venue) error {
	if err := s.venues.Update(ctx, v); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) DeleteVenue(ctx context.Context, id int64) error {
	if err := s.venues.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
