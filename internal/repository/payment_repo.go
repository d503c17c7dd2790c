package repository

import (
	"context"
	"errors"
	"time"

	"eventzen/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrDuplicatePayment is returned when a payment row already exists for the
// booking. Confirm relies on the unique index on payments.booking_id, so a
// concurrent double-confirm surfaces here instead of inserting twice.
var ErrDuplicatePayment = errors.New("payment already recorded for booking")

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Confirm records the payment and flips the booking to confirmed/completed
// in one transaction. A crash cannot leave a Payment row behind with the
// booking still pending.
func (r *PaymentRepository) Confirm(ctx context.Context, p *domain.Payment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return tx.Model(&bookingModel{}).
			Where("id = ?", p.BookingID).
			Updates(map[string]any{
				"status":         string(domain.BookingConfirmed),
				"payment_status": string(domain.PaymentCompleted),
				"updated_at":     time.Now(),
			}).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicatePayment
		}
		return err
	}
	return nil
}

func (r *PaymentRepository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	var p domain.Payment
	tx := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *PaymentRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Payment, error) {
	var out []domain.Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}
