package api

// DataResponse wraps successful responses with a "data" field.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// ArtifactInfo describes one artifact of a rule list on disk.
type ArtifactInfo struct {
	Type     string  `json:"type"` // "text", "ruleset", "clash", "tld", "srs"
	Path     string  `json:"path"`
	Exists   bool    `json:"exists"`
	Size     int64   `json:"size,omitempty"`
	Modified *string `json:"modified,omitempty"` // RFC3339, only when the artifact exists
}

// RuleSetInfo contains a configured rule list and its artifact state.
type RuleSetInfo struct {
	Name      string          `json:"name"`
	Sources   int             `json:"sources"`
	Artifacts []*ArtifactInfo `json:"artifacts"`
}

// RuleSetsResponse returns all rule lists in the configuration.
type RuleSetsResponse struct {
	RuleSets []*RuleSetInfo `json:"rulesets"`
}

// BuildCounts contains per-bucket rule counts of a built list.
type BuildCounts struct {
	Suffix  int `json:"suffix"`
	Full    int `json:"full"`
	Regex   int `json:"regex"`
	Keyword int `json:"keyword"`
	TLD     int `json:"tld"`
	Total   int `json:"total"`
}

// BuildOutcome is the per-list result of a build run.
type BuildOutcome struct {
	List     string      `json:"list"`
	Counts   BuildCounts `json:"counts"`
	Warnings []string    `json:"warnings,omitempty"`
	Changed  bool        `json:"changed"`
	Error    string      `json:"error,omitempty"`
}

// BuildResponse returns the result of a synchronous build run.
type BuildResponse struct {
	Success    bool            `json:"success"`
	DurationMS int64           `json:"duration_ms"`
	Failed     int             `json:"failed"`
	Warnings   int             `json:"warnings"`
	Error      string          `json:"error,omitempty"`
	Outcomes   []*BuildOutcome `json:"outcomes"`
}

// StatusResponse returns server status information.
type StatusResponse struct {
	Version       VersionInfo `json:"version"`
	ConfigPath    string      `json:"config_path"`
	Lists         int         `json:"lists"`
	Building      bool        `json:"building"`
	LastBuild     *string     `json:"last_build,omitempty"` // RFC3339
	LastBuildOK   *bool       `json:"last_build_ok,omitempty"`
	UptimeSeconds int64       `json:"uptime_seconds"`
}

// VersionInfo contains build version information.
type VersionInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// HealthCheckResponse returns health check results.
type HealthCheckResponse struct {
	Healthy bool                   `json:"healthy"`
	Checks  map[string]CheckResult `json:"checks"`
}

// CheckResult contains the result of a single health check.
type CheckResult struct {
	Passed  bool   `json:"passed"`
	Message string `json:"message,omitempty"`
}
