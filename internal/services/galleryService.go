package services

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/arvindpj/treknest/internal/models"
)

type GalleryStore interface {
	Insert(ctx context.Context, img *models.GalleryImage) error
	All(ctx context.Context) ([]models.GalleryImage, error)
	ByID(ctx context.Context, id string) (models.GalleryImage, error)
	Set(ctx context.Context, id string, fields bson.M) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// GalleryService manages gallery records and keeps the object store in sync
// with them.
type GalleryService struct {
	gallery  GalleryStore
	objects  ObjectStore
	log      *zap.Logger
	validate *validator.Validate
}

func NewGalleryService(gallery GalleryStore, objects ObjectStore, log *zap.Logger) *GalleryService {
	return &GalleryService{gallery: gallery, objects: objects, log: log, validate: validator.New()}
}

var galleryUpdatable = updatableFields(models.GalleryImage{})

func (s *GalleryService) Create(ctx context.Context, img *models.GalleryImage) error {
	if err := s.validate.Struct(img); err != nil {
		return asValidationError(err)
	}
	img.CreatedAt = time.Now()
	img.UpdatedAt = img.CreatedAt
	return s.gallery.Insert(ctx, img)
}

func (s *GalleryService) List(ctx context.Context) ([]models.GalleryImage, error) {
	return s.gallery.All(ctx)
}

func (s *GalleryService) Get(ctx context.Context, id string) (models.GalleryImage, error) {
	img, err := s.gallery.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.GalleryImage{}, ErrNotFound
		}
		return models.GalleryImage{}, err
	}
	return img, nil
}

func (s *GalleryService) Update(ctx context.Context, id string, fields bson.M) (models.GalleryImage, error) {
	matched, err := s.gallery.Set(ctx, id, sanitizeUpdate(fields, galleryUpdatable))
	if err != nil {
		return models.GalleryImage{}, err
	}
	if !matched {
		return models.GalleryImage{}, ErrNotFound
	}
	return s.gallery.ByID(ctx, id)
}

// Delete removes the record and its stored object in parallel. A missing
// remote object is logged and tolerated; the record deletion still counts.
func (s *GalleryService) Delete(ctx context.Context, id string) error {
	img, err := s.gallery.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}

	objectChan := make(chan error, 1)
	recordChan := make(chan error, 1)

	go func() {
		if img.ObjectKey == "" {
			objectChan <- nil
			return
		}
		objectChan <- s.objects.Remove(ctx, img.ObjectKey)
	}()
	go func() {
		deleted, err := s.gallery.Delete(ctx, id)
		if err == nil && !deleted {
			err = ErrNotFound
		}
		recordChan <- err
	}()

	objectErr := <-objectChan
	recordErr := <-recordChan

	if recordErr != nil {
		return recordErr
	}
	if objectErr != nil {
		// The asset may already be gone; the gallery record is the source
		// of truth, so the delete still succeeds.
		s.log.Warn("gallery delete: object removal failed",
			zap.String("key", img.ObjectKey), zap.Error(objectErr))
	}
	return nil
}
