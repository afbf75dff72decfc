package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"file-gateway/core/config"
	"file-gateway/core/database"
	"file-gateway/core/loader"
	"file-gateway/core/logger"
	"file-gateway/core/middleware/rayid"
	"file-gateway/core/storage"

	"file-gateway/feature/activity"
	"file-gateway/feature/auth"
	"file-gateway/feature/chat"
	"file-gateway/feature/notes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "file-gateway/docs/swagger"
)

// @title File Gateway API
// @version 1.0
// @description File-management gateway in front of an S3-compatible object store.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the file gateway server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// Database is optional: storage operations work without it, but
		// activity logging and auth stay disabled.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to database")
		}

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		ensureBucket(store, cfg.Storage, logg)

		var recorder *activity.Recorder
		if db != nil {
			recorder, err = activity.NewRecorder(db, logg, 0)
			if err != nil {
				logg.Fatal("Failed to start activity recorder", zap.Error(err))
			}
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
			BodyLimit:             cfg.Server.BodyLimitBytes(),
		})

		mgr := loader.NewManager()

		var notesSink notes.ActivitySink
		var authSink auth.ActivitySink
		if recorder != nil {
			notesSink = recorder
			authSink = recorder
		}

		mgr.Register(notes.NewFeature(store, cfg.Storage.Bucket, logg, cfg.Storage.ListPageSize, notesSink))
		mgr.Register(auth.NewFeature(db, logg, authSink))
		mgr.Register(chat.NewFeature(cfg.Chat, logg))

		// RayID first so every later log line can be traced.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
		if recorder != nil {
			recorder.Close()
		}
	},
}

// ensureBucket provisions the configured bucket on first start.
func ensureBucket(store storage.Client, cfg storage.Config, logg *zap.Logger) {
	ctx := context.Background()

	exists, err := store.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		logg.Fatal("Failed to check bucket", zap.String("bucket", cfg.Bucket), zap.Error(err))
	}
	if !exists {
		if err := store.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			logg.Fatal("Failed to create bucket", zap.String("bucket", cfg.Bucket), zap.Error(err))
		}
		logg.Info("Created bucket", zap.String("bucket", cfg.Bucket))
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
