package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impostor-game-server/middleware"
	"impostor-game-server/models"
	"impostor-game-server/rounds"
	"impostor-game-server/store"
)

// testApp wires the full HTTP surface over the in-memory store, mirroring
// the route layout in handlers. The handlers package cannot be imported here
// without an import cycle in the tests, so the routes are registered inline.
func testApp(t *testing.T) (*fiber.App, *rounds.Engine) {
	t.Helper()
	engine := rounds.New(store.NewMemoryStore(), rounds.WithRand(rand.New(rand.NewSource(1))))
	svc := NewGameService(engine)

	app := fiber.New()
	app.Get("/games/code/:code", svc.GetGameByCode)
	app.Get("/games/:id", svc.GetGame)
	app.Get("/games/:id/players", svc.GetPlayers)
	app.Get("/games/:id/clues", svc.GetClues)
	app.Post("/games/:id/timeout", svc.TimeoutTurn)

	session := app.Group("/", middleware.SessionMiddleware())
	session.Post("/games", svc.CreateGame)
	session.Post("/games/join", svc.JoinGame)
	session.Get("/games/:id/role", svc.GetMyRole)
	session.Post("/games/:id/start", svc.StartGame)
	session.Post("/games/:id/ready", svc.ReadyForClues)
	session.Post("/games/:id/clues", svc.SubmitClue)
	return app, engine
}

func doJSON(t *testing.T, app *fiber.App, method, path, session string, body any) (int, map[string]json.RawMessage) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set("X-Session-ID", session)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	fields := map[string]json.RawMessage{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &fields))
	}
	return resp.StatusCode, fields
}

func unmarshal[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestGameLifecycleOverHTTP(t *testing.T) {
	app, _ := testApp(t)

	status, body := doJSON(t, app, "POST", "/games", "host-session", fiber.Map{"name": "Ana"})
	require.Equal(t, fiber.StatusCreated, status)
	game := unmarshal[models.Game](t, body["game"])
	host := unmarshal[models.Player](t, body["player"])
	assert.Len(t, game.Code, models.CodeLength)
	assert.Equal(t, host.ID, game.HostID)

	for i, name := range []string{"Bruno", "Carla"} {
		status, _ = doJSON(t, app, "POST", "/games/join", fmt.Sprintf("guest-%d", i),
			fiber.Map{"code": game.Code, "name": name})
		require.Equal(t, fiber.StatusOK, status)
	}

	status, _ = doJSON(t, app, "GET", "/games/code/"+game.Code, "", nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = doJSON(t, app, "POST", "/games/"+game.ID+"/start", "host-session",
		fiber.Map{"player_id": host.ID})
	require.Equal(t, fiber.StatusNoContent, status)

	// Role view: at least the host can fetch theirs.
	status, role := doJSON(t, app, "GET", "/games/"+game.ID+"/role", "host-session", nil)
	require.Equal(t, fiber.StatusOK, status)
	_, hasWord := role["secret_word"]
	assert.True(t, hasWord)

	status, _ = doJSON(t, app, "POST", "/games/"+game.ID+"/ready", "host-session",
		fiber.Map{"player_id": host.ID})
	require.Equal(t, fiber.StatusNoContent, status)
}

func TestSessionRequiredForWrites(t *testing.T) {
	app, _ := testApp(t)

	status, body := doJSON(t, app, "POST", "/games", "", fiber.Map{"name": "Ana"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.NotEmpty(t, body["error"])
}

func TestErrorStatusMapping(t *testing.T) {
	app, engine := testApp(t)

	// Unknown game → 404.
	status, _ := doJSON(t, app, "GET", "/games/no-such-id", "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	game, host, err := engine.CreateGame("Ana", "host-session")
	require.NoError(t, err)
	_, guest, err := engine.JoinGame(game.Code, "Bruno", "guest-session")
	require.NoError(t, err)

	// Too few players → 400.
	status, _ = doJSON(t, app, "POST", "/games/"+game.ID+"/start", "host-session",
		fiber.Map{"player_id": host.ID})
	assert.Equal(t, fiber.StatusBadRequest, status)

	// Non-host action → 403.
	status, _ = doJSON(t, app, "POST", "/games/"+game.ID+"/start", "guest-session",
		fiber.Map{"player_id": guest.ID})
	assert.Equal(t, fiber.StatusForbidden, status)

	// Clue outside the clues phase → 409.
	status, _ = doJSON(t, app, "POST", "/games/"+game.ID+"/clues", "host-session",
		fiber.Map{"player_id": host.ID, "clue": "sol"})
	assert.Equal(t, fiber.StatusConflict, status)
}
