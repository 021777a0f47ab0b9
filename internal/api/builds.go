package api

import (
	"net/http"
	"time"

	"github.com/geoset/geoset/internal/build"
)

// TriggerBuild runs a full build synchronously and returns its summary.
// Only one build may run at a time; concurrent requests get 409.
// POST /api/v1/build
func (h *Handler) TriggerBuild(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	if h.building {
		h.mu.Unlock()
		WriteConflict(w, "A build is already running")
		return
	}
	h.building = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		h.building = false
		h.mu.Unlock()
	}()

	cfg, err := h.loadConfig()
	if err != nil {
		WriteInternalError(w, "Failed to load configuration: "+err.Error())
		return
	}
	if err := cfg.ValidateConfig(); err != nil {
		WriteValidationError(w, "Configuration validation failed: "+err.Error(), nil)
		return
	}

	summary, buildErr := build.NewBuilder(cfg).Run(r.Context())
	if summary == nil {
		WriteBuildError(w, buildErr.Error())
		return
	}

	recordSummary(summary)

	response := convertToBuildResponse(summary, buildErr)
	h.mu.Lock()
	h.lastBuild = &buildRecord{finishedAt: time.Now(), ok: response.Success}
	h.mu.Unlock()

	writeJSONData(w, response)
}

// convertToBuildResponse flattens a build summary for JSON responses.
func convertToBuildResponse(summary *build.Summary, buildErr error) *BuildResponse {
	response := &BuildResponse{
		Success:    buildErr == nil && summary.Failed() == 0,
		DurationMS: summary.Duration.Milliseconds(),
		Failed:     summary.Failed(),
		Warnings:   summary.WarningCount(),
		Outcomes:   make([]*BuildOutcome, 0, len(summary.Outcomes)),
	}
	if buildErr != nil {
		response.Error = buildErr.Error()
	}

	for _, outcome := range summary.Outcomes {
		converted := &BuildOutcome{
			List: outcome.List,
			Counts: BuildCounts{
				Suffix:  outcome.Counts.Suffix,
				Full:    outcome.Counts.Full,
				Regex:   outcome.Counts.Regex,
				Keyword: outcome.Counts.Keyword,
				TLD:     outcome.Counts.TLD,
				Total:   outcome.Counts.Total(),
			},
			Warnings: outcome.Warnings,
			Changed:  outcome.Changed,
		}
		if outcome.Err != nil {
			converted.Error = outcome.Err.Error()
		}
		response.Outcomes = append(response.Outcomes, converted)
	}

	return response
}
