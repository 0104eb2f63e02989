package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ObjectStore is the object-storage surface used by uploads and the gallery.
// storage.ObjectStore implements it.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
	URL(key string) string
}

// MaxUploadFiles caps one upload batch. The admin UI enforces the same
// limit client-side; the server check is authoritative.
const MaxUploadFiles = 5

type UploadService struct {
	objects ObjectStore
	log     *zap.Logger
}

func NewUploadService(objects ObjectStore, log *zap.Logger) *UploadService {
	return &UploadService{objects: objects, log: log}
}

// UploadBatch stores every file and returns their public URLs in input
// order. The batch is all-or-nothing: if any file fails, objects already
// stored for this batch are removed and the whole upload is reported failed.
func (s *UploadService) UploadBatch(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, &ValidationError{Fields: []string{"product"}}
	}
	if len(files) > MaxUploadFiles {
		return nil, ErrTooManyFiles
	}

	urls := make([]string, len(files))
	keys := make([]string, len(files))
	errs := make([]error, len(files))

	var wg sync.WaitGroup
	wg.Add(len(files))
	for i, fh := range files {
		go func(i int, fh *multipart.FileHeader) {
			defer wg.Done()
			key := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(fh.Filename))
			url, err := s.putFile(ctx, key, fh)
			if err != nil {
				errs[i] = err
				return
			}
			keys[i] = key
			urls[i] = url
		}(i, fh)
	}
	wg.Wait()

	for i, err := range errs {
		if err == nil {
			continue
		}
		s.log.Error("upload batch failed, rolling back",
			zap.String("file", files[i].Filename), zap.Error(err))
		s.rollback(keys)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return urls, nil
}

func (s *UploadService) putFile(ctx context.Context, key string, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return s.objects.Put(ctx, key, f, fh.Size, fh.Header.Get("Content-Type"))
}

func (s *UploadService) rollback(keys []string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := s.objects.Remove(context.Background(), key); err != nil {
			s.log.Warn("rollback: could not remove object", zap.String("key", key), zap.Error(err))
		}
	}
}
