// Package handlers provides HTTP request handlers for the cyberui API.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/cyberui/internal/cmd/application"
	"github.com/agentstation/cyberui/internal/server/cache"
	"github.com/agentstation/cyberui/pkg/errors"
)

// maxBodyBytes bounds POST bodies.
const maxBodyBytes = 1 << 20

// Handlers provides access to all HTTP handlers.
type Handlers struct {
	app       application.Application
	cache     *cache.Cache
	logger    *zerolog.Logger
	startTime time.Time
}

// New creates a new Handlers instance.
func New(app application.Application, cache *cache.Cache, logger *zerolog.Logger) *Handlers {
	return &Handlers{
		app:       app,
		cache:     cache,
		logger:    logger,
		startTime: time.Now(),
	}
}

// decodeJSON decodes a bounded JSON request body into v. Decoding failures
// are returned as ParseErrors so ErrorFromType maps them to 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.NewParseError("json", "", "request body is empty", err)
		}
		return errors.WrapParse("json", "", err)
	}
	return nil
}
