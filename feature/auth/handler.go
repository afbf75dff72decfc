package auth

import (
	"errors"
	"strings"

	"file-gateway/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ActivitySink receives fire-and-forget audit events.
type ActivitySink interface {
	Record(actor, action, detail, origin string)
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Handler handles HTTP requests for authentication.
type Handler struct {
	service  *Service
	logger   *zap.Logger
	activity ActivitySink
}

// NewHandler creates a new HTTP handler. sink may be nil.
func NewHandler(service *Service, logger *zap.Logger, sink ActivitySink) *Handler {
	return &Handler{service: service, logger: logger, activity: sink}
}

// RegisterRoutes registers the auth routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/auth")
	group.Post("/register", h.HandleRegister)
	group.Post("/login", h.HandleLogin)
}

// HandleRegister creates a new user account.
// @Summary Register
// @Description Register a new user account.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body object true "Username and password"
// @Success 200 {object} map[string]string "Registered"
// @Failure 400 {object} map[string]string "Bad input or username taken"
// @Router /api/auth/register [post]
func (h *Handler) HandleRegister(c *fiber.Ctx) error {
	var creds credentials
	if err := c.BodyParser(&creds); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.service.Register(c.Context(), creds.Username, creds.Password); err != nil {
		if errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrBadCredentialsInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		logger.WithRayID(h.logger, c).Error("Registration failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "registration failed"})
	}

	h.record(c, creds.Username, "REGISTER")
	return c.JSON(fiber.Map{"message": "User registered successfully"})
}

// HandleLogin verifies user credentials.
// @Summary Login
// @Description Verify username and password.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body object true "Username and password"
// @Success 200 {object} map[string]string "Logged in"
// @Failure 400 {object} map[string]string "Invalid credentials"
// @Router /api/auth/login [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	var creds credentials
	if err := c.BodyParser(&creds); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.service.Login(c.Context(), creds.Username, creds.Password); err != nil {
		if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrBadCredentialsInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		logger.WithRayID(h.logger, c).Error("Login failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "login failed"})
	}

	h.record(c, creds.Username, "LOGIN")
	return c.JSON(fiber.Map{"message": "Login successful"})
}

func (h *Handler) record(c *fiber.Ctx, actor, action string) {
	if h.activity == nil {
		return
	}
	origin := c.IP()
	if fwd := c.Get(fiber.HeaderXForwardedFor); fwd != "" {
		if first := strings.TrimSpace(strings.Split(fwd, ",")[0]); first != "" {
			origin = first
		}
	}
	h.activity.Record(actor, action, "", origin)
}
