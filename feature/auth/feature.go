package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature wires the auth service and handler into the feature loader.
// It stays disabled when no database connection is available.
type Feature struct {
	db     *gorm.DB
	logger *zap.Logger
	sink   ActivitySink
}

// NewFeature creates the auth feature. db and sink may be nil.
func NewFeature(db *gorm.DB, logger *zap.Logger, sink ActivitySink) *Feature {
	return &Feature{db: db, logger: logger, sink: sink}
}

func (f *Feature) Name() string {
	return "auth"
}

func (f *Feature) IsEnabled() bool {
	return f.db != nil
}

func (f *Feature) Load(app fiber.Router) error {
	service, err := NewService(f.db)
	if err != nil {
		return fmt.Errorf("init auth service: %w", err)
	}
	NewHandler(service, f.logger, f.sink).RegisterRoutes(app)
	return nil
}
