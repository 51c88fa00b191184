package repositories

import (
	"context"
	"fmt"

	"watchstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactRepository stores messages sent through the contact form.
type ContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	GetAll(ctx context.Context) ([]models.ContactMessage, error)
}

// GORMContactRepository is a GORM implementation of ContactRepository.
type GORMContactRepository struct {
	db *gorm.DB
}

// NewGORMContactRepository creates a new GORMContactRepository.
func NewGORMContactRepository(db *gorm.DB) *GORMContactRepository {
	return &GORMContactRepository{db: db}
}

// Create stores a new contact message.
func (r *GORMContactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}
	return nil
}

// GetAll retrieves all contact messages, newest first.
func (r *GORMContactRepository) GetAll(ctx context.Context) ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&msgs).Error; err != nil {
		return nil, fmt.Errorf("failed to get contact messages: %w", err)
	}
	return msgs, nil
}
