package models

import "time"

// ContactMessage is a message left through the storefront contact form.
type ContactMessage struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" validate:"required,max=150"`
	Email     string    `json:"email" validate:"required,email"`
	Subject   string    `json:"subject" validate:"omitempty,max=200"`
	Message   string    `json:"message" validate:"required,max=5000"`
	CreatedAt time.Time `json:"created_at"`
}
