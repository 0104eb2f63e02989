package handlers_test

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/arvindpj/treknest/internal/handlers"
	"github.com/arvindpj/treknest/internal/models"
	"github.com/arvindpj/treknest/internal/routes"
	"github.com/arvindpj/treknest/internal/services"
)

const testSecret = "handler-test-secret"

func dupKeyErr() error {
	return mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
}

// ---- users ----

type fakeUsers struct {
	mu   sync.Mutex
	byID map[string]models.User
}

func newFakeUsers() *fakeUsers { return &fakeUsers{byID: map[string]models.User{}} }

func (f *fakeUsers) Insert(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return dupKeyErr()
		}
	}
	u.ID = primitive.NewObjectID()
	f.byID[u.ID.Hex()] = *u
	return nil
}

func (f *fakeUsers) ByEmail(_ context.Context, email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, mongo.ErrNoDocuments
}

func (f *fakeUsers) ByID(_ context.Context, id string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, found := f.byID[id]
	if !found {
		return models.User{}, mongo.ErrNoDocuments
	}
	return u, nil
}

func (f *fakeUsers) Set(_ context.Context, id string, fields bson.M) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, found := f.byID[id]
	if !found {
		return false, nil
	}
	if v, ok := fields["name"].(string); ok {
		u.Name = v
	}
	if v, ok := fields["email"].(string); ok {
		u.Email = v
	}
	if v, ok := fields["role"].(string); ok {
		u.Role = v
	}
	if v, ok := fields["password"].(string); ok {
		u.Password = v
	}
	f.byID[id] = u
	return true, nil
}

func (f *fakeUsers) Count(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.byID)), nil
}

// promote flips an account to admin directly in the store, standing in for
// the promotion an existing admin would do through the user-update route.
func (f *fakeUsers) promote(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, u := range f.byID {
		if u.Email == email {
			u.Role = models.RoleAdmin
			f.byID[id] = u
		}
	}
}

// ---- integer-id resources ----

type fakeTreks struct {
	mu     sync.Mutex
	nextID int
	docs   map[int]models.Trek
}

func newFakeTreks() *fakeTreks { return &fakeTreks{docs: map[int]models.Trek{}} }

func (f *fakeTreks) NextID(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	return f.nextID, nil
}

func (f *fakeTreks) Insert(_ context.Context, doc models.Trek) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[doc.ID] = doc
	return nil
}

func (f *fakeTreks) All(context.Context) ([]models.Trek, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int, 0, len(f.docs))
	for id := range f.docs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]models.Trek, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.docs[id])
	}
	return out, nil
}

func (f *fakeTreks) ByID(_ context.Context, id int) (models.Trek, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, found := f.docs[id]
	if !found {
		return models.Trek{}, mongo.ErrNoDocuments
	}
	return doc, nil
}

func (f *fakeTreks) Set(_ context.Context, id int, fields bson.M) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, found := f.docs[id]
	if !found {
		return false, nil
	}
	if v, ok := fields["name"].(string); ok {
		doc.Name = v
	}
	if v, ok := fields["category"].(string); ok {
		doc.Category = v
	}
	if v, ok := fields["location"].(string); ok {
		doc.Location = v
	}
	f.docs[id] = doc
	return true, nil
}

func (f *fakeTreks) Delete(_ context.Context, id int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, found := f.docs[id]; !found {
		return false, nil
	}
	delete(f.docs, id)
	return true, nil
}

func (f *fakeTreks) Count(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.docs)), nil
}

type fakeOutings struct {
	mu     sync.Mutex
	nextID int
	docs   map[int]models.Outing
}

func newFakeOutings() *fakeOutings { return &fakeOutings{docs: map[int]models.Outing{}} }

func (f *fakeOutings) NextID(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	return f.nextID, nil
}

func (f *fakeOutings) Insert(_ context.Context, doc models.Outing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[doc.ID] = doc
	return nil
}

func (f *fakeOutings) All(context.Context) ([]models.Outing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int, 0, len(f.docs))
	for id := range f.docs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]models.Outing, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.docs[id])
	}
	return out, nil
}

func (f *fakeOutings) ByID(_ context.Context, id int) (models.Outing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, found := f.docs[id]
	if !found {
		return models.Outing{}, mongo.ErrNoDocuments
	}
	return doc, nil
}

func (f *fakeOutings) Set(_ context.Context, id int, fields bson.M) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, found := f.docs[id]
	if !found {
		return false, nil
	}
	if v, ok := fields["name"].(string); ok {
		doc.Name = v
	}
	f.docs[id] = doc
	return true, nil
}

func (f *fakeOutings) Delete(_ context.Context, id int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, found := f.docs[id]; !found {
		return false, nil
	}
	delete(f.docs, id)
	return true, nil
}

func (f *fakeOutings) Count(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.docs)), nil
}

// ---- contacts ----

type fakeContacts struct {
	mu   sync.Mutex
	docs map[string]models.Contact
}

func newFakeContacts() *fakeContacts { return &fakeContacts{docs: map[string]models.Contact{}} }

func (f *fakeContacts) Insert(_ context.Context, c *models.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.docs {
		if existing.Email == c.Email {
			return dupKeyErr()
		}
	}
	c.ID = primitive.NewObjectID()
	f.docs[c.ID.Hex()] = *c
	return nil
}

func (f *fakeContacts) All(context.Context) ([]models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Contact, 0, len(f.docs))
	for _, c := range f.docs {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeContacts) Set(_ context.Context, id string, fields bson.M) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, found := f.docs[id]
	if !found {
		return false, nil
	}
	if v, ok := fields["status"].(string); ok {
		c.Status = v
	}
	f.docs[id] = c
	return true, nil
}

func (f *fakeContacts) Delete(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, found := f.docs[id]; !found {
		return false, nil
	}
	delete(f.docs, id)
	return true, nil
}

func (f *fakeContacts) CountByStatus(context.Context) (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := map[string]int64{}
	for _, c := range f.docs {
		counts[c.Status]++
	}
	return counts, nil
}

// ---- gallery ----

type fakeGallery struct {
	mu   sync.Mutex
	docs map[string]models.GalleryImage
}

func newFakeGallery() *fakeGallery { return &fakeGallery{docs: map[string]models.GalleryImage{}} }

func (f *fakeGallery) Insert(_ context.Context, img *models.GalleryImage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	img.ID = primitive.NewObjectID()
	f.docs[img.ID.Hex()] = *img
	return nil
}

func (f *fakeGallery) All(context.Context) ([]models.GalleryImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.GalleryImage, 0, len(f.docs))
	for _, img := range f.docs {
		out = append(out, img)
	}
	return out, nil
}

func (f *fakeGallery) ByID(_ context.Context, id string) (models.GalleryImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	img, found := f.docs[id]
	if !found {
		return models.GalleryImage{}, mongo.ErrNoDocuments
	}
	return img, nil
}

func (f *fakeGallery) Set(_ context.Context, id string, fields bson.M) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	img, found := f.docs[id]
	if !found {
		return false, nil
	}
	if v, ok := fields["title"].(string); ok {
		img.Title = v
	}
	if v, ok := fields["imageUrl"].(string); ok {
		img.ImageURL = v
	}
	if v, ok := fields["storageId"].(string); ok {
		img.ObjectKey = v
	}
	f.docs[id] = img
	return true, nil
}

func (f *fakeGallery) Delete(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, found := f.docs[id]; !found {
		return false, nil
	}
	delete(f.docs, id)
	return true, nil
}

func (f *fakeGallery) Count(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.docs)), nil
}

// ---- object store ----

type fakeObjects struct {
	mu      sync.Mutex
	objects map[string]string
	removed []string
}

func newFakeObjects() *fakeObjects { return &fakeObjects{objects: map[string]string{}} }

func (f *fakeObjects) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = string(content)
	return f.URL(key), nil
}

func (f *fakeObjects) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, found := f.objects[key]; !found {
		return errors.New("no such object")
	}
	delete(f.objects, key)
	f.removed = append(f.removed, key)
	return nil
}

func (f *fakeObjects) URL(key string) string { return "store://images/" + key }

// ---- app wiring ----

type testEnv struct {
	App      *fiber.App
	Users    *fakeUsers
	Treks    *fakeTreks
	Outings  *fakeOutings
	Contacts *fakeContacts
	Gallery  *fakeGallery
	Objects  *fakeObjects
}

func newTestEnv() *testEnv {
	env := &testEnv{
		Users:    newFakeUsers(),
		Treks:    newFakeTreks(),
		Outings:  newFakeOutings(),
		Contacts: newFakeContacts(),
		Gallery:  newFakeGallery(),
		Objects:  newFakeObjects(),
	}

	log := zap.NewNop()
	authSvc := services.NewAuthService(env.Users, testSecret, time.Hour)
	catalogSvc := services.NewCatalogService(env.Treks, env.Outings)
	contactSvc := services.NewContactService(env.Contacts)
	gallerySvc := services.NewGalleryService(env.Gallery, env.Objects, log)
	uploadSvc := services.NewUploadService(env.Objects, log)
	statsSvc := services.NewStatsService(env.Treks, env.Outings, env.Gallery, env.Users, env.Contacts)

	app := fiber.New()
	routes.Register(app, routes.Handlers{
		Auth:    handlers.NewAuthHandler(authSvc),
		Catalog: handlers.NewCatalogHandler(catalogSvc),
		Contact: handlers.NewContactHandler(contactSvc),
		Gallery: handlers.NewGalleryHandler(gallerySvc),
		Upload:  handlers.NewUploadHandler(uploadSvc),
		Admin:   handlers.NewAdminHandler(statsSvc),
		Health:  handlers.NewHealthHandler(nil),
	}, testSecret)

	env.App = app
	return env
}
