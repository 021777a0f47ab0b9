package config

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/geoset/geoset/internal/utils"
)

type Config struct {
	// ConfigVersion is the configuration file version.
	ConfigVersion uint8 `toml:"config_version" json:"config_version"`
	// General holds general configuration.
	General *GeneralConfig `toml:"general"`
	// Compile configures the external binary rule-set compiler step.
	Compile *CompileConfig `toml:"compile,omitempty" json:"compile,omitempty"`
	// Publish configures relocation of built artifacts for distribution.
	Publish *PublishConfig `toml:"publish,omitempty" json:"publish,omitempty"`
	// Server configures the HTTP API server.
	Server *ServerConfig `toml:"server,omitempty" json:"server,omitempty"`
	// Check configures the dead-domain audit of the check command.
	Check *CheckConfig `toml:"check,omitempty" json:"check,omitempty"`
	// Lists describes the named rule lists to build. Each list merges its
	// community sources, files, URLs and inline entries into one output.
	Lists []*ListConfig `toml:"list,omitempty"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// DataDir is the community data directory with includable source files. It must exist when a build starts.
	DataDir string `toml:"data_dir" json:"data_dir" validate:"required"`
	// OutputDir is the root directory for built artifacts.
	OutputDir string `toml:"output_dir" json:"output_dir" validate:"required"`
	// DownloadsDir is the cache directory for URL sources (default: <output_dir>/downloads).
	DownloadsDir string `toml:"downloads_dir,omitempty" json:"downloads_dir,omitempty"`
	// Workers is the number of parallel list pipelines (0 = number of logical CPUs).
	Workers int `toml:"workers" json:"workers" validate:"gte=0"`
	// ExcludeAttrs are attribute tokens excluded from every list, merged with per-list exclusions.
	ExcludeAttrs []string `toml:"exclude_attrs,omitempty" json:"exclude_attrs,omitempty" validate:"dive,attr_token"`
}

type CompileConfig struct {
	// Enabled turns on compilation of emitted rule-set documents into binary artifacts (default: false).
	Enabled bool `toml:"enabled" json:"enabled"`
	// SingBoxPath is the sing-box binary to invoke (default: "sing-box", resolved via PATH).
	SingBoxPath string `toml:"sing_box_path,omitempty" json:"sing_box_path,omitempty"`
	// TimeoutSeconds bounds a single compiler invocation (default: 60).
	TimeoutSeconds int `toml:"timeout_seconds" json:"timeout_seconds" validate:"gte=0"`
}

type PublishConfig struct {
	// Enabled turns on the publish step after a successful build (default: false).
	Enabled bool `toml:"enabled" json:"enabled"`
	// OutputDir is the distribution directory artifacts are copied into.
	OutputDir string `toml:"output_dir" json:"output_dir" validate:"required_if=Enabled true"`
	// NameTemplate names published artifacts. Available variables: {{name}}, {{type}}, {{ext}}.
	NameTemplate string `toml:"name_template,omitempty" json:"name_template,omitempty"`
}

type ServerConfig struct {
	// Listen is the HTTP API listen address (default: "127.0.0.1:8801").
	Listen string `toml:"listen,omitempty" json:"listen,omitempty" validate:"hostport_or_empty"`
}

type CheckConfig struct {
	// Upstreams are DNS servers used by the dead-domain audit (format udp://ip:port, default: ["udp://1.1.1.1:53"]).
	Upstreams []string `toml:"upstreams,omitempty" json:"upstreams,omitempty" validate:"dive,upstream_url"`
	// SampleSize bounds how many domains per list are resolved (0 = all).
	SampleSize int `toml:"sample_size" json:"sample_size" validate:"gte=0"`
	// TimeoutMS is the per-query timeout in milliseconds (default: 3000).
	TimeoutMS int `toml:"timeout_ms" json:"timeout_ms" validate:"gte=0"`
}

type ListConfig struct {
	// Name identifies the list and names its artifacts.
	Name string `toml:"name" json:"name" validate:"required,list_name"`
	// Sources are community data file names resolved against data_dir, include-expanded recursively.
	Sources []string `toml:"sources,omitempty" json:"sources,omitempty"`
	// Files are local source files with an optional format.
	Files []*FileSource `toml:"file,omitempty" json:"file,omitempty" validate:"dive"`
	// URLs are remote sources fetched by the download command into the downloads cache.
	URLs []*URLSource `toml:"url,omitempty" json:"url,omitempty" validate:"dive"`
	// Entries are inline rule lines.
	Entries []string `toml:"entries,omitempty" json:"entries,omitempty"`
	// ExcludeAttrs drops rule lines tagged with any of these attribute tokens.
	ExcludeAttrs []string `toml:"exclude_attrs,omitempty" json:"exclude_attrs,omitempty" validate:"dive,attr_token"`
	// RemoveSources are community data names whose expanded rules are subtracted from this list.
	RemoveSources []string `toml:"remove_sources,omitempty" json:"remove_sources,omitempty"`
	// RemoveEntries are inline rule lines subtracted from this list.
	RemoveEntries []string `toml:"remove_entries,omitempty" json:"remove_entries,omitempty"`
	// Output selects which artifacts to emit for this list.
	Output *OutputConfig `toml:"output,omitempty" json:"output,omitempty"`
}

type FileSource struct {
	// Path is the source file path, relative paths resolve against the config directory.
	Path string `toml:"path" json:"path" validate:"required"`
	// Format of the file: domains (default), dnsmasq, adblock or hosts.
	Format string `toml:"format,omitempty" json:"format,omitempty" validate:"source_format"`
}

type URLSource struct {
	// URL of the remote source.
	URL string `toml:"url" json:"url" validate:"required,url"`
	// Format of the fetched content: domains (default), dnsmasq, adblock or hosts.
	Format string `toml:"format,omitempty" json:"format,omitempty" validate:"source_format"`
}

type OutputConfig struct {
	// Text emits the normalized per-list text artifact (default: true).
	Text bool `toml:"text" json:"text"`
	// Ruleset emits the rule-set source document (default: true).
	Ruleset bool `toml:"ruleset" json:"ruleset"`
	// Clash emits a clash-style domain text provider (default: false).
	Clash bool `toml:"clash" json:"clash"`
	// TLD emits the side list of bare single-label values (default: true).
	TLD bool `toml:"tld" json:"tld"`
}

// DefaultOutput is the artifact selection used when a list has no
// explicit output section.
var DefaultOutput = OutputConfig{Text: true, Ruleset: true, Clash: false, TLD: true}

func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

func (c *Config) GetAbsDataDir() string {
	return utils.GetAbsolutePath(c.General.DataDir, c.GetConfigDir())
}

func (c *Config) GetAbsOutputDir() string {
	return utils.GetAbsolutePath(c.General.OutputDir, c.GetConfigDir())
}

func (c *Config) GetAbsDownloadsDir() string {
	if c.General.DownloadsDir != "" {
		return utils.GetAbsolutePath(c.General.DownloadsDir, c.GetConfigDir())
	}
	return filepath.Join(c.GetAbsOutputDir(), "downloads")
}

// GetWorkers returns the configured worker count, defaulting to the
// number of logical CPUs.
func (c *Config) GetWorkers() int {
	if c.General != nil && c.General.Workers > 0 {
		return c.General.Workers
	}
	return runtime.NumCPU()
}

// GetList returns the named list config, or nil if no such list exists.
func (c *Config) GetList(name string) *ListConfig {
	for _, list := range c.Lists {
		if list.Name == name {
			return list
		}
	}
	return nil
}

// Outputs returns the list's artifact selection with defaults applied.
func (l *ListConfig) Outputs() OutputConfig {
	if l.Output == nil {
		return DefaultOutput
	}
	return *l.Output
}

// EffectiveExcludeAttrs merges the global and per-list excluded
// attribute tokens.
func (l *ListConfig) EffectiveExcludeAttrs(c *Config) []string {
	var attrs []string
	if c.General != nil {
		attrs = append(attrs, c.General.ExcludeAttrs...)
	}
	attrs = append(attrs, l.ExcludeAttrs...)
	return attrs
}

// URLCachePath returns the downloads-cache path for the i-th URL source
// of this list.
func (l *ListConfig) URLCachePath(c *Config, i int) string {
	return filepath.Join(c.GetAbsDownloadsDir(), fmt.Sprintf("%s-%d.lst", l.Name, i))
}

// AbsFilePath resolves a file source path against the config directory.
func (f *FileSource) AbsFilePath(c *Config) string {
	return utils.GetAbsolutePath(f.Path, c.GetConfigDir())
}
