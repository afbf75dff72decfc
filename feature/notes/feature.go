package notes

import (
	"file-gateway/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the gateway service and handler into the feature loader.
type Feature struct {
	handler *Handler
	service *Service
}

// NewFeature creates the notes feature. sink may be nil when activity
// logging is disabled.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger, pageSize int, sink ActivitySink) *Feature {
	service := NewService(client, bucket, logger, pageSize)
	return &Feature{
		service: service,
		handler: NewHandler(service, sink),
	}
}

// Service exposes the gateway service for non-HTTP callers (CLI).
func (f *Feature) Service() *Service {
	return f.service
}

func (f *Feature) Name() string {
	return "notes"
}

func (f *Feature) IsEnabled() bool {
	return true
}

func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
