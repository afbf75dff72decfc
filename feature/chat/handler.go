package chat

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"file-gateway/core/config"
	"file-gateway/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type askRequest struct {
	Message string `json:"message"`
}

// Handler proxies questions to the upstream generative-language API.
type Handler struct {
	apiURL string
	apiKey string
	client *http.Client
	logger *zap.Logger
}

// NewHandler creates a new chat proxy handler.
func NewHandler(cfg config.ChatConfig, logger *zap.Logger) *Handler {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &Handler{
		apiURL: cfg.APIURL,
		apiKey: cfg.APIKey,
		client: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		logger: logger,
	}
}

// RegisterRoutes registers the chat routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/chat")
	group.Post("/ask", h.HandleAsk)
}

// HandleAsk forwards a question and returns the upstream response verbatim.
// @Summary Ask the assistant
// @Description Forward a question to the configured conversational-AI API.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body object true "Message to ask"
// @Success 200 {object} map[string]interface{} "Upstream response"
// @Failure 400 {object} map[string]string "Empty message"
// @Failure 500 {object} map[string]string "Upstream failure"
// @Router /api/chat/ask [post]
func (h *Handler) HandleAsk(c *fiber.Ctx) error {
	var req askRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Message cannot be empty"})
	}

	// Upstream payload shape for the generative-language API.
	payload := map[string]any{
		"contents": []any{
			map[string]any{
				"parts": []any{
					map[string]any{"text": req.Message},
				},
			},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "chat request failed"})
	}

	upstream, err := http.NewRequestWithContext(c.Context(), http.MethodPost, h.apiURL+"?key="+h.apiKey, bytes.NewReader(body))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "chat request failed"})
	}
	upstream.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(upstream)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Chat upstream call failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "chat request failed"})
	}
	defer resp.Body.Close()

	var answer map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		logger.WithRayID(h.logger, c).Error("Chat upstream returned invalid JSON", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "chat request failed"})
	}
	if resp.StatusCode != http.StatusOK {
		logger.WithRayID(h.logger, c).Error("Chat upstream returned error status",
			zap.Int("status", resp.StatusCode))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "chat request failed"})
	}

	return c.JSON(answer)
}
