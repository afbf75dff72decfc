package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// BodyLimitMB caps the size of an incoming request body in megabytes.
	// Multipart folder uploads can carry many files in one request.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"100"`
}

// BodyLimitBytes returns the request body cap in bytes, falling back to the
// default when the configured value is not positive.
func (c Config) BodyLimitBytes() int {
	mb := c.BodyLimitMB
	if mb <= 0 {
		mb = 100
	}
	return mb * 1024 * 1024
}
