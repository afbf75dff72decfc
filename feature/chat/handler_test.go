package chat_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"file-gateway/core/config"
	"file-gateway/feature/chat"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newChatApp(apiURL string) *fiber.App {
	app := fiber.New()
	cfg := config.ChatConfig{APIURL: apiURL, APIKey: "test-key", TimeoutSeconds: 5}
	chat.NewHandler(cfg, zap.NewNop()).RegisterRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp
}

func TestHandleAsk(t *testing.T) {
	t.Run("EmptyMessage", func(t *testing.T) {
		app := newChatApp("http://unused.invalid")

		resp := postJSON(t, app, "/api/chat/ask", map[string]string{"message": "   "})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("ForwardsToUpstream", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))

			var payload map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Contains(t, payload, "contents")

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[{"content":"hi"}]}`))
		}))
		defer upstream.Close()

		app := newChatApp(upstream.URL)

		resp := postJSON(t, app, "/api/chat/ask", map[string]string{"message": "hello"})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var answer map[string]any
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&answer))
		assert.Contains(t, answer, "candidates")
	})

	t.Run("UpstreamFailure", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"error":"boom"}`))
		}))
		defer upstream.Close()

		app := newChatApp(upstream.URL)

		resp := postJSON(t, app, "/api/chat/ask", map[string]string{"message": "hello"})
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}
