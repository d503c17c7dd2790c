package repository

import (
	"context"

	"eventzen/internal/domain"

	"gorm.io/gorm"
)

type AttendeeRepository struct {
	db *gorm.DB
}

func NewAttendeeRepository(db *gorm.DB) *AttendeeRepository {
	return &AttendeeRepository{db: db}
}

func (r *AttendeeRepository) Create(ctx context.Context, a *domain.Attendee) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AttendeeRepository) GetByID(ctx context.Context, id int64) (*domain.Attendee, error) {
	var a domain.Attendee
	tx := r.db.WithContext(ctx).First(&a, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &a, nil
}

func (r *AttendeeRepository) ListByEvent(ctx context.Context, eventID int64) ([]domain.Attendee, error) {
	var out []domain.Attendee
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("name ASC").
		Find(&out).Error
	return out, err
}

func (r *AttendeeRepository) Update(ctx context.Context, a *domain.Attendee) error {
	res := r.db.WithContext(ctx).Model(&domain.Attendee{}).Where("id = ?", a.ID).Updates(a)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AttendeeRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Attendee{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
