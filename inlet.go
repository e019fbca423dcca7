package inlet

import (
	"io"

	"github.com/indigo-web/inlet/config"
	"github.com/indigo-web/inlet/http"
	"github.com/indigo-web/inlet/internal/protocol/http1"
	"github.com/indigo-web/inlet/internal/stash"
)

// ParseRequest reads a single request head from src using the default config.
func ParseRequest(src io.Reader) (*http.Request, error) {
	return ParseRequestWith(config.Default(), src)
}

// ParseRequestWith is ParseRequest with a custom config.
func ParseRequestWith(cfg *config.Config, src io.Reader) (*http.Request, error) {
	reader := stash.New(src, cfg.NET.ReadBufferSize)
	return http1.NewParser(cfg, reader).Parse()
}
