package domain

import "time"

type Event struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Location    string    `json:"location,omitempty"`
	Category    string    `json:"category,omitempty"`
	Date        time.Time `json:"date" validate:"required"`
	Price       float64   `json:"price" validate:"gte=0"`
	Capacity    int       `json:"capacity" validate:"gt=0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
