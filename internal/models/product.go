package models

import "time"

// Product represents a watch in the catalog.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Brand       string    `json:"brand" gorm:"index;type:varchar(100)" validate:"required,max=100"`
	Model       string    `json:"model" gorm:"type:varchar(150)" validate:"required,max=150"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Image       string    `json:"image" validate:"omitempty,max=500"`
	Tag         string    `json:"tag" gorm:"index;type:varchar(50)" validate:"omitempty,max=50"`
	Description string    `json:"description" validate:"omitempty,max=2000"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DisplayName is the name shown for the product on orders and e-mails.
func (p Product) DisplayName() string {
	return p.Brand + " " + p.Model
}

// ProductFilter narrows a catalog listing. Empty fields match everything.
type ProductFilter struct {
	Brand string
	Tag   string
}
