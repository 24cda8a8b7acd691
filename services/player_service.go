package services

import (
	"errors"
	"strings"

	"farkle-backend/models"
	"farkle-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type PlayerService struct {
	DB *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{DB: db}
}

type createPlayerRequest struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// playerSummary is the row shape shared by the leaderboard and the
// user-players listing: a player plus their basic aggregates.
type playerSummary struct {
	PlayerID    string  `json:"player_id"`
	Name        string  `json:"name"`
	Wins        int64   `json:"wins"`
	AvgScore    float64 `json:"avg_score"`
	TotalPoints int64   `json:"total_points"`
}

// CreatePlayer inserts a new player profile for a user. The user record is
// created on first sight of the identifier; repeated identifiers reuse the
// existing row, so user creation is idempotent.
func (s *PlayerService) CreatePlayer(c *fiber.Ctx) error {
	var req createPlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(c, "invalid JSON body")
	}

	req.UserID = strings.TrimSpace(req.UserID)
	req.Name = strings.TrimSpace(req.Name)
	if req.UserID == "" {
		return utils.ValidationError(c, "user_id is required")
	}
	if req.Name == "" {
		return utils.ValidationError(c, "name is required")
	}

	player := models.Player{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		DisplayName: req.Name,
		Handle:      slug.Make(req.Name),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		err := tx.First(&user, "user_id = ?", req.UserID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = models.User{UserID: req.UserID, LoginType: models.LoginTypeAnonymous}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		return tx.Create(&player).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "failed to create player",
			"details": err.Error(),
		})
	}

	return c.JSON(player)
}

// ListUserPlayers returns every player profile owned by a user, each with
// their basic aggregates. A player with no recorded matches still appears,
// with zeroed stats.
func (s *PlayerService) ListUserPlayers(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return utils.ValidationError(c, "user_id is required")
	}

	var user models.User
	if err := s.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError(c, "user not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "failed to load user",
			"details": err.Error(),
		})
	}

	var rows []playerSummary
	err := s.DB.Model(&models.Player{}).
		Select(summarySelect).
		Joins("LEFT JOIN match_results ON match_results.player_id = players.id").
		Where("players.user_id = ?", userID).
		Group("players.id, players.display_name, players.created_at").
		Order("players.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "failed to list players",
			"details": err.Error(),
		})
	}

	if rows == nil {
		rows = []playerSummary{}
	}
	return c.JSON(fiber.Map{"players": rows})
}
