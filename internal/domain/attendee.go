package domain

import "time"

type Attendee struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"event_id" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone,omitempty"`
	CheckedIn bool      `json:"checked_in"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Event *Event `json:"event,omitempty" gorm:"foreignKey:EventID"`
}
