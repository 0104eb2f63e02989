package services

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/arvindpj/treknest/internal/models"
)

type ContactStore interface {
	Insert(ctx context.Context, c *models.Contact) error
	All(ctx context.Context) ([]models.Contact, error)
	Set(ctx context.Context, id string, fields bson.M) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

// ContactService handles storefront inquiries and their admin workflow.
type ContactService struct {
	contacts ContactStore
	validate *validator.Validate
}

func NewContactService(contacts ContactStore) *ContactService {
	return &ContactService{contacts: contacts, validate: validator.New()}
}

// Submit records one inquiry per email address; a second submission from the
// same address is rejected as a duplicate (unique index on contacts.email).
func (s *ContactService) Submit(ctx context.Context, c *models.Contact) error {
	if err := s.validate.Struct(c); err != nil {
		return asValidationError(err)
	}
	c.Status = models.ContactPending
	c.CreatedAt = time.Now()
	if err := s.contacts.Insert(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *ContactService) List(ctx context.Context) ([]models.Contact, error) {
	return s.contacts.All(ctx)
}

func (s *ContactService) UpdateStatus(ctx context.Context, id string, req models.ContactStatusRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return asValidationError(err)
	}
	matched, err := s.contacts.Set(ctx, id, bson.M{"status": req.Status})
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	deleted, err := s.contacts.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
