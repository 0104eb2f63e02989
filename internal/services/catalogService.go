package services

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/arvindpj/treknest/internal/models"
)

// ResourceStore is the generic CRUD surface for integer-id resources.
// repository.Resource implements it; tests use in-memory fakes.
type ResourceStore[T any] interface {
	NextID(ctx context.Context) (int, error)
	Insert(ctx context.Context, doc T) error
	All(ctx context.Context) ([]T, error)
	ByID(ctx context.Context, id int) (T, error)
	Set(ctx context.Context, id int, fields bson.M) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// CatalogService owns the trek and outing listings.
type CatalogService struct {
	treks    ResourceStore[models.Trek]
	outings  ResourceStore[models.Outing]
	validate *validator.Validate
}

func NewCatalogService(treks ResourceStore[models.Trek], outings ResourceStore[models.Outing]) *CatalogService {
	return &CatalogService{treks: treks, outings: outings, validate: validator.New()}
}

func (s *CatalogService) CreateTrek(ctx context.Context, t *models.Trek) error {
	if err := s.validate.Struct(t); err != nil {
		return asValidationError(err)
	}
	id, err := s.treks.NextID(ctx)
	if err != nil {
		return err
	}
	t.ID = id
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	return s.treks.Insert(ctx, *t)
}

func (s *CatalogService) ListTreks(ctx context.Context) ([]models.Trek, error) {
	return s.treks.All(ctx)
}

func (s *CatalogService) GetTrek(ctx context.Context, id int) (models.Trek, error) {
	t, err := s.treks.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Trek{}, ErrNotFound
		}
		return models.Trek{}, err
	}
	return t, nil
}

func (s *CatalogService) UpdateTrek(ctx context.Context, id int, fields bson.M) (models.Trek, error) {
	matched, err := s.treks.Set(ctx, id, sanitizeUpdate(fields, trekUpdatable))
	if err != nil {
		return models.Trek{}, err
	}
	if !matched {
		return models.Trek{}, ErrNotFound
	}
	return s.treks.ByID(ctx, id)
}

func (s *CatalogService) DeleteTrek(ctx context.Context, id int) error {
	deleted, err := s.treks.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *CatalogService) CreateOuting(ctx context.Context, o *models.Outing) error {
	if err := s.validate.Struct(o); err != nil {
		return asValidationError(err)
	}
	id, err := s.outings.NextID(ctx)
	if err != nil {
		return err
	}
	o.ID = id
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	return s.outings.Insert(ctx, *o)
}

func (s *CatalogService) ListOutings(ctx context.Context) ([]models.Outing, error) {
	return s.outings.All(ctx)
}

func (s *CatalogService) GetOuting(ctx context.Context, id int) (models.Outing, error) {
	o, err := s.outings.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Outing{}, ErrNotFound
		}
		return models.Outing{}, err
	}
	return o, nil
}

func (s *CatalogService) UpdateOuting(ctx context.Context, id int, fields bson.M) (models.Outing, error) {
	matched, err := s.outings.Set(ctx, id, sanitizeUpdate(fields, outingUpdatable))
	if err != nil {
		return models.Outing{}, err
	}
	if !matched {
		return models.Outing{}, ErrNotFound
	}
	return s.outings.ByID(ctx, id)
}

func (s *CatalogService) DeleteOuting(ctx context.Context, id int) error {
	deleted, err := s.outings.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

var (
	trekUpdatable   = updatableFields(models.Trek{})
	outingUpdatable = updatableFields(models.Outing{})
)

// updatableFields collects the stored field names of a model that a partial
// update may change. Identity and bookkeeping keys stay out of the set.
func updatableFields(model interface{}) map[string]struct{} {
	t := reflect.TypeOf(model)
	fields := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("bson"), ",")
		switch name {
		case "", "-", "_id", "id", "createdAt", "updatedAt":
			continue
		}
		fields[name] = struct{}{}
	}
	return fields
}

// sanitizeUpdate keeps only the model's known updatable keys from a
// client-supplied partial update and stamps updatedAt, so typo'd or hostile
// keys never reach $set.
func sanitizeUpdate(fields bson.M, allowed map[string]struct{}) bson.M {
	clean := bson.M{}
	for k, v := range fields {
		if _, ok := allowed[k]; ok {
			clean[k] = v
		}
	}
	clean["updatedAt"] = time.Now()
	return clean
}
