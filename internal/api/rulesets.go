package api

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/geoset/geoset/internal/build"
	"github.com/geoset/geoset/internal/config"
)

// GetRuleSets returns all rule lists in the configuration.
// GET /api/v1/rulesets
func (h *Handler) GetRuleSets(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.loadConfig()
	if err != nil {
		WriteInternalError(w, "Failed to load configuration: "+err.Error())
		return
	}

	infos := make([]*RuleSetInfo, 0, len(cfg.Lists))
	for _, list := range cfg.Lists {
		infos = append(infos, convertToRuleSetInfo(cfg, list))
	}

	writeJSONData(w, RuleSetsResponse{RuleSets: infos})
}

// GetRuleSet returns a specific rule list by name.
// GET /api/v1/rulesets/{name}
func (h *Handler) GetRuleSet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	cfg, err := h.loadConfig()
	if err != nil {
		WriteInternalError(w, "Failed to load configuration: "+err.Error())
		return
	}

	list := cfg.GetList(name)
	if list == nil {
		WriteNotFound(w, "Rule list")
		return
	}

	writeJSONData(w, convertToRuleSetInfo(cfg, list))
}

// GetRuleSetDocument serves the built rule-set source document.
// GET /api/v1/rulesets/{name}/ruleset
func (h *Handler) GetRuleSetDocument(w http.ResponseWriter, r *http.Request) {
	h.serveArtifact(w, r, build.ArtifactRuleset, "application/json")
}

// GetRuleSetText serves the built normalized text artifact.
// GET /api/v1/rulesets/{name}/text
func (h *Handler) GetRuleSetText(w http.ResponseWriter, r *http.Request) {
	h.serveArtifact(w, r, build.ArtifactText, "text/plain; charset=utf-8")
}

// serveArtifact streams a built artifact of the named list from disk.
// Unknown lists and lists that have not been built yet return 404.
func (h *Handler) serveArtifact(w http.ResponseWriter, r *http.Request, typ, contentType string) {
	name := chi.URLParam(r, "name")

	cfg, err := h.loadConfig()
	if err != nil {
		WriteInternalError(w, "Failed to load configuration: "+err.Error())
		return
	}

	list := cfg.GetList(name)
	if list == nil {
		WriteNotFound(w, "Rule list")
		return
	}

	data, err := os.ReadFile(build.ArtifactPath(cfg, list.Name, typ))
	if err != nil {
		if os.IsNotExist(err) {
			WriteNotFound(w, "Artifact")
			return
		}
		WriteInternalError(w, "Failed to read artifact: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// convertToRuleSetInfo collects the on-disk artifact state of a list.
func convertToRuleSetInfo(cfg *config.Config, list *config.ListConfig) *RuleSetInfo {
	info := &RuleSetInfo{
		Name:    list.Name,
		Sources: len(list.Sources) + len(list.Files) + len(list.URLs) + len(list.Entries),
	}

	for _, artifact := range build.ExpectedArtifacts(cfg, list) {
		artifactInfo := &ArtifactInfo{
			Type: artifact.Type,
			Path: artifact.Path,
		}
		if stat, err := os.Stat(artifact.Path); err == nil {
			artifactInfo.Exists = true
			artifactInfo.Size = stat.Size()
			modified := stat.ModTime().UTC().Format(time.RFC3339)
			artifactInfo.Modified = &modified
		}
		info.Artifacts = append(info.Artifacts, artifactInfo)
	}

	return info
}
