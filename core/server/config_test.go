package server_test

import (
	"testing"

	"file-gateway/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_BodyLimitBytes(t *testing.T) {
	tests := []struct {
		name    string
		limitMB int
		want    int
	}{
		{"Configured", 10, 10 * 1024 * 1024},
		{"Zero", 0, 100 * 1024 * 1024},
		{"Negative", -5, 100 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{BodyLimitMB: tt.limitMB}
			assert.Equal(t, tt.want, c.BodyLimitBytes())
		})
	}
}
