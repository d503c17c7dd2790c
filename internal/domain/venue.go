package domain

import "time"

// Venue price is the hourly rate used for venue booking totals.
type Venue struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	Amenities string    `json:"amenities,omitempty" gorm:"type:text"`
	Price     float64   `json:"price" validate:"gte=0"`
	Capacity  int       `json:"capacity" validate:"gt=0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
