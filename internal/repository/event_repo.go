package repository

import (
	"context"

	"eventzen/internal/domain"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	var e domain.Event
	tx := r.db.WithContext(ctx).First(&e, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &e, nil
}

func (r *EventRepository) List(ctx context.Context, limit, offset int) ([]domain.Event, error) {
	var out []domain.Event
	q := r.db.WithContext(ctx).Order("date ASC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	res := r.db.WithContext(ctx).Model(&domain.Event{}).Where("id = ?", e.ID).Updates(e)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Event{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
