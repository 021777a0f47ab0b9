package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/geoset/geoset/internal/config"
)

// Handler manages all API endpoints. Configuration is loaded from disk
// on every request so edits to the config file take effect without a
// server restart.
type Handler struct {
	configPath string
	startedAt  time.Time

	mu        sync.Mutex
	building  bool
	lastBuild *buildRecord
}

// buildRecord remembers when the last build finished and whether it
// succeeded.
type buildRecord struct {
	finishedAt time.Time
	ok         bool
}

// NewHandler creates a new API handler for the given configuration path.
func NewHandler(configPath string) *Handler {
	return &Handler{
		configPath: configPath,
		startedAt:  time.Now(),
	}
}

// loadConfig loads the configuration from disk.
func (h *Handler) loadConfig() (*config.Config, error) {
	return config.LoadConfig(h.configPath)
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(DataResponse{Data: data})
}

// writeJSONData writes a successful JSON response with data.
func writeJSONData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}
