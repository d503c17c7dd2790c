package domain

import "time"

type Vendor struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	Phone       string    `json:"phone,omitempty"`
	ServiceType string    `json:"service_type,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
