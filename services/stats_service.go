package services

import (
	"errors"
	"strconv"

	"farkle-backend/models"
	"farkle-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// Recognized leaderboard sort keys, mapped to the aggregate column they
// order by. Keys outside this map are rejected.
var leaderboardSortColumns = map[string]string{
	"avg_score":    "avg_score",
	"wins":         "wins",
	"total_points": "total_points",
}

const summarySelect = `players.id AS player_id,
	players.display_name AS name,
	COALESCE(SUM(CASE WHEN match_results.won THEN 1 ELSE 0 END), 0) AS wins,
	COALESCE(AVG(match_results.score), 0) AS avg_score,
	COALESCE(SUM(match_results.score), 0) AS total_points`

// GetPlayerStats returns the aggregated stats for one player, computed
// directly over their match_results rows. A player with no matches gets
// zeroes, not an error.
func (s *StatsService) GetPlayerStats(c *fiber.Ctx) error {
	playerID := c.Query("player_id")
	if playerID == "" {
		return utils.ValidationError(c, "player_id is required")
	}

	var player models.Player
	if err := s.DB.First(&player, "id = ?", playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError(c, "player not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "failed to load player",
			"details": err.Error(),
		})
	}

	var row struct {
		GamesPlayed  int64
		Wins         int64
		AvgScore     float64
		TotalPoints  int64
		TotalFarkles int64
		HighScore    int64
	}
	err := s.DB.Model(&models.MatchResult{}).
		Select(`COUNT(id) AS games_played,
			COALESCE(SUM(CASE WHEN won THEN 1 ELSE 0 END), 0) AS wins,
			COALESCE(AVG(score), 0) AS avg_score,
			COALESCE(SUM(score), 0) AS total_points,
			COALESCE(SUM(farkles), 0) AS total_farkles,
			COALESCE(MAX(score), 0) AS high_score`).
		Where("player_id = ?", playerID).
		Scan(&row).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "failed to aggregate stats",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"player_id":     player.ID,
		"name":          player.DisplayName,
		"games_played":  row.GamesPlayed,
		"wins":          row.Wins,
		"avg_score":     row.AvgScore,
		"total_points":  row.TotalPoints,
		"total_farkles": row.TotalFarkles,
		"high_score":    row.HighScore,
	})
}

// GetLeaderboard ranks all players with at least one recorded result by the
// requested metric, descending. Ties break by player id ascending so the
// ordering is stable across calls over the same data.
func (s *StatsService) GetLeaderboard(c *fiber.Ctx) error {
	sortKey := c.Query("sort", "avg_score")
	column, ok := leaderboardSortColumns[sortKey]
	if !ok {
		return utils.ValidationError(c, "sort must be one of avg_score, wins, total_points")
	}

	limit, err := strconv.Atoi(c.Query("limit", "25"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 25
	}

	var rows []playerSummary
	err = s.DB.Model(&models.Player{}).
		Select(summarySelect).
		Joins("INNER JOIN match_results ON match_results.player_id = players.id").
		Group("players.id, players.display_name").
		Order(column + " DESC, players.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "failed to build leaderboard",
			"details": err.Error(),
		})
	}

	if rows == nil {
		rows = []playerSummary{}
	}
	return c.JSON(fiber.Map{"rows": rows})
}
