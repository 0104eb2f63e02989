package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/arvindpj/treknest/internal/config"
	"github.com/arvindpj/treknest/internal/db"
	"github.com/arvindpj/treknest/internal/handlers"
	"github.com/arvindpj/treknest/internal/logger"
	"github.com/arvindpj/treknest/internal/metrics"
	"github.com/arvindpj/treknest/internal/repository"
	"github.com/arvindpj/treknest/internal/routes"
	"github.com/arvindpj/treknest/internal/services"
	"github.com/arvindpj/treknest/internal/storage"

	"github.com/arvindpj/treknest/internal/models"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	zlog, err := logger.Init(os.Getenv("APP_ENV") != "production")
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zlog.Sync()

	// Connect to MongoDB
	mongoDB, err := db.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		zlog.Fatal("mongodb connection failed", zap.Error(err))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := mongoDB.EnsureIndexes(ctx); err != nil {
		zlog.Fatal("index creation failed", zap.Error(err))
	}

	// Connect to MinIO
	objects, err := storage.New(storage.Options{
		Endpoint:      cfg.MinioEndpoint,
		AccessKey:     cfg.MinioAccess,
		SecretKey:     cfg.MinioSecret,
		Bucket:        cfg.MinioBucket,
		UseSSL:        cfg.MinioUseSSL,
		PublicURLBase: cfg.PublicURLBase,
	})
	if err != nil {
		zlog.Fatal("minio connection failed", zap.Error(err))
	}

	// Repositories
	counters := mongoDB.Collection(db.ColCounters)
	trekSeq := repository.NewSequence(counters, db.ColTreks)
	outingSeq := repository.NewSequence(counters, db.ColOutings)
	if err := trekSeq.Seed(ctx, mongoDB.Collection(db.ColTreks)); err != nil {
		zlog.Fatal("trek sequence seed failed", zap.Error(err))
	}
	if err := outingSeq.Seed(ctx, mongoDB.Collection(db.ColOutings)); err != nil {
		zlog.Fatal("outing sequence seed failed", zap.Error(err))
	}

	treks := repository.NewResource[models.Trek](mongoDB.Collection(db.ColTreks), trekSeq)
	outings := repository.NewResource[models.Outing](mongoDB.Collection(db.ColOutings), outingSeq)
	users := repository.NewUserRepo(mongoDB.Collection(db.ColUsers))
	contacts := repository.NewContactRepo(mongoDB.Collection(db.ColContacts))
	gallery := repository.NewGalleryRepo(mongoDB.Collection(db.ColGallery))

	// Services
	authSvc := services.NewAuthService(users, cfg.JWTSecret, cfg.TokenTTL)
	catalogSvc := services.NewCatalogService(treks, outings)
	contactSvc := services.NewContactService(contacts)
	gallerySvc := services.NewGalleryService(gallery, objects, zlog)
	uploadSvc := services.NewUploadService(objects, zlog)
	statsSvc := services.NewStatsService(treks, outings, gallery, users, contacts)

	app := fiber.New(fiber.Config{
		BodyLimit: 32 * 1024 * 1024, // multipart image batches
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New())
	app.Use(metrics.Middleware())

	routes.Register(app, routes.Handlers{
		Auth:    handlers.NewAuthHandler(authSvc),
		Catalog: handlers.NewCatalogHandler(catalogSvc),
		Contact: handlers.NewContactHandler(contactSvc),
		Gallery: handlers.NewGalleryHandler(gallerySvc),
		Upload:  handlers.NewUploadHandler(uploadSvc),
		Admin:   handlers.NewAdminHandler(statsSvc),
		Health:  handlers.NewHealthHandler(mongoDB),
	}, cfg.JWTSecret)

	zlog.Info("starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
