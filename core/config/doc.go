// Package config provides configuration management for the file gateway.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, body limit)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Database: activity/auth database connection details
//   - Log: logging level and format
//   - Chat: upstream conversational-AI proxy settings
//
// Defaults come from `default` struct tags; environment variables override
// them using SECTION_KEY naming (e.g. STORAGE_BUCKET -> storage.bucket).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
