package services_test

import (
	"net/http"
	"testing"
	"time"

	"farkle-backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitGameResult(t *testing.T) {
	app, db := setupTestApp(t)

	aliceID := createPlayer(t, app, "u1", "Alice")
	bobID := createPlayer(t, app, "u1", "Bob")

	resp := postJSON(t, app, "/game-result", fiber.Map{
		"results": []fiber.Map{
			{"player_id": aliceID, "score": 9800, "rank": 1, "turns": 8, "farkles": 1},
			{"player_id": bobID, "score": 8700, "rank": 2, "turns": 9, "farkles": 3},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["match_id"])
	assert.Equal(t, float64(2), body["results_recorded"])

	var matchCount, resultCount int64
	require.NoError(t, db.Model(&models.Match{}).Count(&matchCount).Error)
	require.NoError(t, db.Model(&models.MatchResult{}).Count(&resultCount).Error)
	assert.Equal(t, int64(1), matchCount)
	assert.Equal(t, int64(2), resultCount)

	var aliceResult, bobResult models.MatchResult
	require.NoError(t, db.First(&aliceResult, "player_id = ?", aliceID).Error)
	require.NoError(t, db.First(&bobResult, "player_id = ?", bobID).Error)
	assert.True(t, aliceResult.Won)
	assert.False(t, bobResult.Won)
	assert.Equal(t, aliceResult.MatchID, bobResult.MatchID)
	assert.Equal(t, 1, aliceResult.Farkles)
	assert.Equal(t, 9, bobResult.Turns)
}

func TestSubmitGameResultClientPlayedAt(t *testing.T) {
	app, db := setupTestApp(t)

	aliceID := createPlayer(t, app, "u1", "Alice")
	playedAt := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)

	resp := postJSON(t, app, "/game-result", fiber.Map{
		"played_at": playedAt,
		"results": []fiber.Map{
			{"player_id": aliceID, "score": 5000, "rank": 1},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var match models.Match
	require.NoError(t, db.First(&match).Error)
	assert.True(t, match.PlayedAt.Equal(playedAt))
}

func TestSubmitGameResultUnknownPlayer(t *testing.T) {
	app, db := setupTestApp(t)

	aliceID := createPlayer(t, app, "u1", "Alice")

	resp := postJSON(t, app, "/game-result", fiber.Map{
		"results": []fiber.Map{
			{"player_id": aliceID, "score": 100, "rank": 1},
			{"player_id": "ghost", "score": 50, "rank": 2},
		},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "not_found", body["kind"])

	// Nothing may have been written.
	var matchCount, resultCount int64
	require.NoError(t, db.Model(&models.Match{}).Count(&matchCount).Error)
	require.NoError(t, db.Model(&models.MatchResult{}).Count(&resultCount).Error)
	assert.Equal(t, int64(0), matchCount)
	assert.Equal(t, int64(0), resultCount)
}

func TestSubmitGameResultValidation(t *testing.T) {
	app, _ := setupTestApp(t)

	aliceID := createPlayer(t, app, "u1", "Alice")
	bobID := createPlayer(t, app, "u1", "Bob")

	cases := []struct {
		name    string
		results []fiber.Map
	}{
		{"empty results", []fiber.Map{}},
		{"tied ranks", []fiber.Map{
			{"player_id": aliceID, "score": 100, "rank": 1},
			{"player_id": bobID, "score": 100, "rank": 1},
		}},
		{"rank gap", []fiber.Map{
			{"player_id": aliceID, "score": 100, "rank": 1},
			{"player_id": bobID, "score": 50, "rank": 3},
		}},
		{"rank below one", []fiber.Map{
			{"player_id": aliceID, "score": 100, "rank": 0},
			{"player_id": bobID, "score": 50, "rank": 1},
		}},
		{"duplicate player", []fiber.Map{
			{"player_id": aliceID, "score": 100, "rank": 1},
			{"player_id": aliceID, "score": 50, "rank": 2},
		}},
		{"missing player_id", []fiber.Map{
			{"score": 100, "rank": 1},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, app, "/game-result", fiber.Map{"results": tc.results})
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body := decodeBody(t, resp)
			assert.Equal(t, "validation", body["kind"])
		})
	}
}
