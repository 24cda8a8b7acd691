// Dev-data seeder: creates one anonymous user with two players and a single
// completed match between them. Run against an empty database:
//
//	go run ./cmd/seed
package main

import (
	"log"
	"os"
	"strings"
	"time"

	"farkle-backend/models"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openDatabase(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
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

	user := models.User{
		UserID:    uuid.NewString(),
		LoginType: models.LoginTypeAnonymous,
	}

	players := make([]models.Player, 0, 2)
	for _, name := range []string{"Alice", "Bob"} {
		players = append(players, models.Player{
			ID:          uuid.NewString(),
			UserID:      user.UserID,
			DisplayName: name,
			Handle:      slug.Make(name),
		})
	}

	match := models.Match{
		ID:       uuid.NewString(),
		PlayedAt: time.Now().UTC(),
	}
	results := []models.MatchResult{
		{
			ID:       uuid.NewString(),
			MatchID:  match.ID,
			PlayerID: players[0].ID,
			Score:    9800,
			Rank:     1,
			Won:      true,
			Turns:    8,
			Farkles:  1,
		},
		{
			ID:       uuid.NewString(),
			MatchID:  match.ID,
			PlayerID: players[1].ID,
			Score:    8700,
			Rank:     2,
			Won:      false,
			Turns:    9,
			Farkles:  3,
		},
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if err := tx.Create(&players).Error; err != nil {
			return err
		}
		if err := tx.Create(&match).Error; err != nil {
			return err
		}
		return tx.Create(&results).Error
	})
	if err != nil {
		log.Fatal("failed to seed dev data:", err)
	}

	log.Printf("✅ Seeded user %s with players Alice and Bob and one match", user.UserID)
}
