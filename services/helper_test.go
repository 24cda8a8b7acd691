package services_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"farkle-backend/handlers"
	"farkle-backend/models"
	"farkle-backend/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestApp builds a fiber app with all routes registered against a
// fresh in-memory sqlite database. The DSN is namespaced by test name so
// parallel tests never share state.
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Player{},
		&models.Match{},
		&models.MatchResult{},
	))

	app := fiber.New()
	handlers.SetupRoutes(app,
		services.NewPlayerService(db),
		services.NewMatchService(db),
		services.NewStatsService(db),
	)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func getPath(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// createPlayer posts to /create-player and returns the new player's id.
func createPlayer(t *testing.T, app *fiber.App, userID, name string) string {
	t.Helper()

	resp := postJSON(t, app, "/create-player", fiber.Map{"user_id": userID, "name": name})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	id, ok := body["player_id"].(string)
	require.True(t, ok, "response should carry player_id")
	return id
}

// submitMatch posts a two-entry game result: winner with winnerScore at
// rank 1, loser with loserScore at rank 2.
func submitMatch(t *testing.T, app *fiber.App, winnerID string, winnerScore int, loserID string, loserScore int) {
	t.Helper()

	resp := postJSON(t, app, "/game-result", fiber.Map{
		"results": []fiber.Map{
			{"player_id": winnerID, "score": winnerScore, "rank": 1},
			{"player_id": loserID, "score": loserScore, "rank": 2},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
