package repository

import (
	"context"

	"eventzen/internal/domain"

	"gorm.io/gorm"
)

type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VenueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	var v domain.Venue
	tx := r.db.WithContext(ctx).First(&v, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &v, nil
}

func (r *VenueRepository) List(ctx context.Context, limit, offset int) ([]domain.Venue, error) {
	var out []domain.Venue
	q := r.db.WithContext(ctx).Order("name ASC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *VenueRepository) Update(ctx context.Context, v *domain.Venue) error {
	res := r.db.WithContext(ctx).Model(&domain.Venue{}).Where("id = ?", v.ID).Updates(v)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *VenueRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Venue{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
