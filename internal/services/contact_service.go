package services

import (
	"context"
	"fmt"

	"watchstore/internal/models"
	"watchstore/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// ContactService stores contact-form messages for the admin inbox.
type ContactService struct {
	repo     repositories.ContactRepository
	validate *validator.Validate
}

// NewContactService creates a new ContactService.
func NewContactService(repo repositories.ContactRepository) *ContactService {
	return &ContactService{repo: repo, validate: validator.New()}
}

// Submit validates and stores a contact message.
func (s *ContactService) Submit(ctx context.Context, msg *models.ContactMessage) error {
	if err := s.validate.Struct(msg); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.repo.Create(ctx, msg)
}

// List returns every contact message, newest first.
func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	return s.repo.GetAll(ctx)
}
