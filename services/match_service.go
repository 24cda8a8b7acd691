package services

import (
	"fmt"
	"time"

	"farkle-backend/models"
	"farkle-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MatchService struct {
	DB *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{DB: db}
}

type gameResultEntry struct {
	PlayerID string `json:"player_id"`
	Score    int64  `json:"score"`
	Rank     int    `json:"rank"`
	Turns    int    `json:"turns"`
	Farkles  int    `json:"farkles"`
}

type gameResultRequest struct {
	PlayedAt *time.Time        `json:"played_at"`
	Results  []gameResultEntry `json:"results"`
}

// validateRanks checks that the submitted ranks are exactly the sequence
// 1..N with no ties. The won flag is derived from rank, so ambiguity here
// is rejected rather than guessed at.
func validateRanks(entries []gameResultEntry) error {
	seen := make([]bool, len(entries))
	for _, e := range entries {
		if e.Rank < 1 || e.Rank > len(entries) {
			return fmt.Errorf("rank %d is outside 1..%d", e.Rank, len(entries))
		}
		if seen[e.Rank-1] {
			return fmt.Errorf("rank %d appears more than once", e.Rank)
		}
		seen[e.Rank-1] = true
	}
	return nil
}

// SubmitGameResult records one completed match and its per-player results
// in a single transaction. Either the match and every result commit, or
// nothing does.
func (s *MatchService) SubmitGameResult(c *fiber.Ctx) error {
	var req gameResultRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(c, "invalid JSON body")
	}

	if len(req.Results) == 0 {
		return utils.ValidationError(c, "results must contain at least one entry")
	}

	playerIDs := make([]string, 0, len(req.Results))
	dedupe := make(map[string]bool, len(req.Results))
	for _, e := range req.Results {
		if e.PlayerID == "" {
			return utils.ValidationError(c, "every result entry needs a player_id")
		}
		if dedupe[e.PlayerID] {
			return utils.ValidationError(c, "player "+e.PlayerID+" appears more than once")
		}
		dedupe[e.PlayerID] = true
		playerIDs = append(playerIDs, e.PlayerID)
	}

	if err := validateRanks(req.Results); err != nil {
		return utils.ValidationError(c, err.Error())
	}

	var existing []string
	if err := s.DB.Model(&models.Player{}).Where("id IN ?", playerIDs).Pluck("id", &existing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "failed to verify players",
			"details": err.Error(),
		})
	}
	known := make(map[string]bool, len(existing))
	for _, id := range existing {
		known[id] = true
	}
	for _, id := range playerIDs {
		if !known[id] {
			return utils.NotFoundError(c, "player "+id+" not found")
		}
	}

	playedAt := time.Now().UTC()
	if req.PlayedAt != nil {
		playedAt = *req.PlayedAt
	}

	match := models.Match{
		ID:       uuid.NewString(),
		PlayedAt: playedAt,
	}
	results := make([]models.MatchResult, 0, len(req.Results))
	for _, e := range req.Results {
		results = append(results, models.MatchResult{
			ID:       uuid.NewString(),
			MatchID:  match.ID,
			PlayerID: e.PlayerID,
			Score:    e.Score,
			Rank:     e.Rank,
			Won:      e.Rank == 1,
			Turns:    e.Turns,
			Farkles:  e.Farkles,
		})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&match).Error; err != nil {
			return err
		}
		return tx.Create(&results).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "failed to record match",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"match_id":         match.ID,
		"played_at":        match.PlayedAt,
		"results_recorded": len(results),
	})
}
