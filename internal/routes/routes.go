package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arvindpj/treknest/internal/handlers"
	"github.com/arvindpj/treknest/internal/metrics"
	"github.com/arvindpj/treknest/internal/middleware"
)

type Handlers struct {
	Auth    *handlers.AuthHandler
	Catalog *handlers.CatalogHandler
	Contact *handlers.ContactHandler
	Gallery *handlers.GalleryHandler
	Upload  *handlers.UploadHandler
	Admin   *handlers.AdminHandler
	Health  *handlers.HealthHandler
}

// Register wires the whole REST surface. Paths keep the shapes the frontends
// already call (/addproduct, /allproducts, id-in-body mutations).
func Register(app *fiber.App, h Handlers, jwtSecret string) {
	auth := middleware.Auth(jwtSecret)
	admin := middleware.AdminOnly()

	app.Get("/healthz", h.Health.Check)
	app.Get("/metrics", metrics.Handler())

	// Accounts
	app.Post("/register", h.Auth.Register)
	app.Post("/login", h.Auth.Login)
	app.Get("/me", auth, h.Auth.Me)
	app.Put("/update-profile", auth, h.Auth.UpdateProfile)
	app.Put("/users/:id", auth, admin, h.Auth.UpdateUser)

	// Treks
	app.Post("/addproduct", auth, admin, h.Catalog.AddTrek)
	app.Get("/allproducts", h.Catalog.ListTreks)
	app.Get("/allproducts/:id", h.Catalog.GetTrek)
	app.Put("/updateproduct", auth, admin, h.Catalog.UpdateTrek)
	app.Post("/removeproduct", auth, admin, h.Catalog.RemoveTrek)

	// Outings
	app.Post("/addouting", auth, admin, h.Catalog.AddOuting)
	app.Get("/alloutings", h.Catalog.ListOutings)
	app.Get("/alloutings/:id", h.Catalog.GetOuting)
	app.Put("/updateouting", auth, admin, h.Catalog.UpdateOuting)
	app.Post("/removeouting", auth, admin, h.Catalog.RemoveOuting)

	// Contact inquiries
	app.Post("/contact", h.Contact.Submit)
	app.Get("/allcontact", auth, admin, h.Contact.List)
	app.Put("/updatecontact/:id", auth, admin, h.Contact.UpdateStatus)
	app.Post("/removecontact", auth, admin, h.Contact.Remove)

	// Uploads and gallery
	app.Post("/upload", auth, admin, h.Upload.Upload)
	app.Get("/gallery", h.Gallery.List)
	app.Get("/gallery/:id", h.Gallery.Get)
	app.Post("/gallery", auth, admin, h.Gallery.Create)
	app.Put("/gallery/:id", auth, admin, h.Gallery.Update)
	app.Delete("/gallery/:id", auth, admin, h.Gallery.Delete)

	// Admin dashboard
	app.Get("/admin/stats", auth, admin, h.Admin.Stats)
}
