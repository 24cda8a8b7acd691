package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"farkle-backend/handlers"
	"farkle-backend/middleware"
	"farkle-backend/models"
	"farkle-backend/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openDatabase picks the driver from the DSN: a postgres URL selects the
// production backend, anything else is treated as a local sqlite file path.
func openDatabase(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		AppName: "farkle-backend",
	})

	app.Use(middleware.ServiceAuthMiddleware())

	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(allowedOriginsList, ","),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Requested-With",
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Println("⚠️  DATABASE_URL not set, using local sqlite file farkle.db")
		dsn = "farkle.db"
	}

	db, err := openDatabase(dsn)
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Player{},
		&models.Match{},
		&models.MatchResult{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	playerService := services.NewPlayerService(db)
	matchService := services.NewMatchService(db)
	statsService := services.NewStatsService(db)

	handlers.SetupRoutes(app, playerService, matchService, statsService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
