package repository

import (
	"context"

	"eventzen/internal/domain"

	"gorm.io/gorm"
)

type VendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

func (r *VendorRepository) Create(ctx context.Context, v *domain.Vendor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VendorRepository) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	var v domain.Vendor
	tx := r.db.WithContext(ctx).First(&v, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &v, nil
}

func (r *VendorRepository) List(ctx context.Context) ([]domain.Vendor, error) {
	var out []domain.Vendor
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

func (r *VendorRepository) Update(ctx context.Context, v *domain.Vendor) error {
	res := r.db.WithContext(ctx).Model(&domain.Vendor{}).Where("id = ?", v.ID).Updates(v)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *VendorRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Vendor{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
