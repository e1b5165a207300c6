package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/terraincognita07/foodt/internal/api"
	"github.com/terraincognita07/foodt/internal/db"
	"github.com/terraincognita07/foodt/internal/security"
	"github.com/terraincognita07/foodt/internal/services"
)

const maxUploadBytes = 16 * 1024 * 1024

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := os.Getenv("SECRET_KEY")
	if secretKey == "" {
		// Sessions won't survive a restart without a configured key.
		secretKey = mustRandomSecret()
		log.Print("SECRET_KEY not set, using a generated one for this run")
	}
	dbPath := getEnv("DB_PATH", filepath.Join("data", "foodt.db"))
	imageDir := getEnv("IMAGE_DIR", filepath.Join("data", "food_images"))
	port := getEnv("PORT", "8080")
	adminPassword := getEnv("ADMIN_PASSWORD", "admin")

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	repositories := db.NewRepositories(database)
	if err := services.NewAuthService(repositories.Users).EnsureDefaultAdmin(adminPassword); err != nil {
		log.Fatalf("default admin bootstrap failed: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	handler, err := api.NewHandler(database, secretKey, filepath.Join("web", "templates"), imageDir, location, rng)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "FoodT",
		DisableStartupMessage: true,
		BodyLimit:             maxUploadBytes,
		ErrorHandler:          handler.InternalError,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "foodt_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: false,
		ContextKey:     "csrf",
	}))

	app.Static("/static", filepath.Join("web", "static"))
	app.Static("/static/food_images", imageDir)
	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("FoodT listening on http://0.0.0.0:%s (db: %s, images: %s)", port, dbPath, imageDir)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func mustRandomSecret() string {
	secret, err := security.RandomSecret(48)
	if err != nil {
		log.Fatalf("generate session secret: %v", err)
	}
	return secret
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
