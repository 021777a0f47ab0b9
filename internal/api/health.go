package api

import (
	"net/http"
	"os"

	"github.com/geoset/geoset/internal/compile"
)

// CheckHealth performs health checks on the server configuration.
// GET /api/v1/health
func (h *Handler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthCheckResponse{
		Healthy: true,
		Checks:  make(map[string]CheckResult),
	}

	cfg, err := h.loadConfig()
	if err != nil {
		response.Healthy = false
		response.Checks["config_load"] = CheckResult{
			Passed:  false,
			Message: "Failed to load configuration: " + err.Error(),
		}
		writeJSONData(w, response)
		return
	}
	response.Checks["config_load"] = CheckResult{
		Passed:  true,
		Message: "Configuration loaded",
	}

	// Check configuration validity
	if err := cfg.ValidateConfig(); err != nil {
		response.Healthy = false
		response.Checks["config_validation"] = CheckResult{
			Passed:  false,
			Message: "Configuration validation failed: " + err.Error(),
		}
	} else {
		response.Checks["config_validation"] = CheckResult{
			Passed:  true,
			Message: "Configuration is valid",
		}
	}

	// Check the community data directory exists
	dataDir := cfg.GetAbsDataDir()
	if stat, err := os.Stat(dataDir); err != nil || !stat.IsDir() {
		response.Healthy = false
		response.Checks["data_dir"] = CheckResult{
			Passed:  false,
			Message: "Community data directory is not accessible: " + dataDir,
		}
	} else {
		response.Checks["data_dir"] = CheckResult{
			Passed:  true,
			Message: "Community data directory is present",
		}
	}

	// Check the rule-set compiler when compilation is enabled
	if cfg.Compile != nil && cfg.Compile.Enabled {
		if err := compile.New(cfg.Compile).CheckExecutable(); err != nil {
			response.Healthy = false
			response.Checks["compiler"] = CheckResult{
				Passed:  false,
				Message: "Rule-set compiler is not available: " + err.Error(),
			}
		} else {
			response.Checks["compiler"] = CheckResult{
				Passed:  true,
				Message: "Rule-set compiler is available",
			}
		}
	} else {
		response.Checks["compiler"] = CheckResult{
			Passed:  true,
			Message: "Compilation disabled",
		}
	}

	writeJSONData(w, response)
}
