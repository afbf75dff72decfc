// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// defines the configuration structure for server settings such as the listen
// port and the request body size cap for multipart uploads.
package server
