// Package database handles database connections for the gateway's
// relational state (activity log, user accounts).
//
// It provides a wrapper around GORM that configures MySQL connections for
// production use (pool limits, DSN timeouts, ping-on-connect) and SQLite
// connections for tests.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Database connection failed", err)
//	}
package database
