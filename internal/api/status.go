package api

import (
	"net/http"
	"time"
)

var (
	// Version information set via ldflags at build time
	Version = "dev"
	Date    = "n/a"
	Commit  = "n/a"
)

// GetStatus returns server status information.
// GET /api/v1/status
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	response := StatusResponse{
		Version: VersionInfo{
			Version: Version,
			Date:    Date,
			Commit:  Commit,
		},
		ConfigPath:    h.configPath,
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
	}

	if cfg, err := h.loadConfig(); err == nil {
		response.Lists = len(cfg.Lists)
	}

	h.mu.Lock()
	response.Building = h.building
	if h.lastBuild != nil {
		finished := h.lastBuild.finishedAt.UTC().Format(time.RFC3339)
		ok := h.lastBuild.ok
		response.LastBuild = &finished
		response.LastBuildOK = &ok
	}
	h.mu.Unlock()

	writeJSONData(w, response)
}
