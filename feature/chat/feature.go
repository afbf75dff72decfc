package chat

import (
	"file-gateway/core/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the chat proxy into the feature loader. It stays disabled
// until an upstream API URL is configured.
type Feature struct {
	cfg    config.ChatConfig
	logger *zap.Logger
}

// NewFeature creates the chat feature.
func NewFeature(cfg config.ChatConfig, logger *zap.Logger) *Feature {
	return &Feature{cfg: cfg, logger: logger}
}

func (f *Feature) Name() string {
	return "chat"
}

func (f *Feature) IsEnabled() bool {
	return f.cfg.APIURL != ""
}

func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.cfg, f.logger).RegisterRoutes(app)
	return nil
}
