package repository

import (
	"context"
	"errors"
	"time"

	"eventzen/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrCapacityExceeded is returned when a reserve-and-create would
// oversubscribe the target event's capacity.
var ErrCapacityExceeded = errors.New("capacity exceeded")

// ErrSlotTaken is returned when a venue reservation overlaps an existing
// active reservation for the same venue.
var ErrSlotTaken = errors.New("venue slot already reserved")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	UserID          int64      `gorm:"column:user_id"`
	EventID         *int64     `gorm:"column:event_id"`
	VenueID         *int64     `gorm:"column:venue_id"`
	TicketCount     int        `gorm:"column:ticket_count"`
	BookingDate     *time.Time `gorm:"column:booking_date"`
	BookingDuration int        `gorm:"column:booking_duration"`
	AttendeeCount   int        `gorm:"column:attendee_count"`
	TotalAmount     float64    `gorm:"column:total_amount"`
	Status          string     `gorm:"column:status"`
	PaymentStatus   string     `gorm:"column:payment_status"`
	Notes           *string    `gorm:"column:notes"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
	CancelledAt     *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Booking{
		ID:              m.ID,
		UserID:          m.UserID,
		EventID:         m.EventID,
		VenueID:         m.VenueID,
		TicketCount:     m.TicketCount,
		BookingDate:     m.BookingDate,
		BookingDuration: m.BookingDuration,
		AttendeeCount:   m.AttendeeCount,
		TotalAmount:     m.TotalAmount,
		Status:          domain.BookingStatus(m.Status),
		PaymentStatus:   domain.PaymentStatus(m.PaymentStatus),
		Notes:           notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		CancelledAt:     m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var notes *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}

	return bookingModel{
		ID:              b.ID,
		UserID:          b.UserID,
		EventID:         b.EventID,
		VenueID:         b.VenueID,
		TicketCount:     b.TicketCount,
		BookingDate:     b.BookingDate,
		BookingDuration: b.BookingDuration,
		AttendeeCount:   b.AttendeeCount,
		TotalAmount:     b.TotalAmount,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		Notes:           notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
		CancelledAt:     b.CancelledAt,
	}
}

// lockTargetRow takes a row lock on the booked event or venue so that
// concurrent reserves for the same target serialize and the count below
// sees every committed insert. SQLite has no FOR UPDATE; its single-writer
// lock already serializes the transactions.
func lockTargetRow(tx *gorm.DB, table string, id int64) error {
	q := tx.Table(table).Select("id").Where("id = ?", id)
	if tx.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var locked int64
	return q.Take(&locked).Error
}

// CreateEventReserved inserts an event booking, counting already reserved
// tickets in the same transaction, with the event row locked, so two
// concurrent requests cannot both slip past the capacity limit.
func (r *BookingRepository) CreateEventReserved(ctx context.Context, b *domain.Booking, capacity int) error {
	m := toBookingModel(b)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockTargetRow(tx, "events", *b.EventID); err != nil {
			return err
		}

		var reserved int64
		q := `
SELECT COALESCE(SUM(ticket_count), 0)
FROM bookings
WHERE event_id = ?
  AND status NOT IN ('cancelled')
`
		if err := tx.Raw(q, *b.EventID).Scan(&reserved).Error; err != nil {
			return err
		}
		if reserved+int64(b.TicketCount) > int64(capacity) {
			return ErrCapacityExceeded
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return err
	}
	*b = *toDomainBooking(m)
	return nil
}

// CreateVenueReserved inserts a venue booking after checking, in the same
// transaction, that no active reservation for the venue overlaps the
// requested window.
func (r *BookingRepository) CreateVenueReserved(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	start := *b.BookingDate
	end := start.Add(time.Duration(b.BookingDuration) * time.Hour)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockTargetRow(tx, "venues", *b.VenueID); err != nil {
			return err
		}

		// Durations cap at 12h, so anything starting earlier than 12h
		// before the requested window cannot overlap it.
		var existing []bookingModel
		if err := tx.
			Where("venue_id = ? AND status NOT IN ('cancelled') AND booking_date >= ? AND booking_date < ?",
				*b.VenueID, start.Add(-12*time.Hour), end).
			Find(&existing).Error; err != nil {
			return err
		}
		for _, e := range existing {
			if e.BookingDate == nil {
				continue
			}
			eEnd := e.BookingDate.Add(time.Duration(e.BookingDuration) * time.Hour)
			if e.BookingDate.Before(end) && start.Before(eEnd) {
				return ErrSlotTaken
			}
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return err
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	var models []bookingModel
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	updates := map[string]any{"status": string(status), "updated_at": time.Now()}
	if status == domain.BookingCancelled {
		now := time.Now()
		updates["cancelled_at"] = &now
	}

	res := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) error {
	res := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{"payment_status": string(status), "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
