package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pelletier/go-toml/v2"

	"github.com/geoset/geoset/internal/log"
)

var (
	listNameRegexp = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
	attrRegexp     = regexp.MustCompile(`^!?[a-zA-Z0-9._-]+$`)
)

// Template variables available in publish name templates.
const (
	PUBLISH_TMPL_NAME = "name"
	PUBLISH_TMPL_TYPE = "type"
	PUBLISH_TMPL_EXT  = "ext"
)

func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		log.Errorf("Configuration file not found: %s", configFile)
		return nil, fmt.Errorf("configuration file not found: %s", configFile)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf(derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file")
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config._absConfigFilePath = configFile
	config.applyDefaults()

	log.Debugf("Configuration file path: %s", configFile)
	if config.General != nil {
		log.Debugf("Community data directory: %s", config.GetAbsDataDir())
		log.Debugf("Artifact output directory: %s", config.GetAbsOutputDir())
	}

	return &config, nil
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

// applyDefaults fills optional sections and their zero-valued fields so
// the rest of the application never branches on missing sections.
func (c *Config) applyDefaults() {
	if c.Compile == nil {
		c.Compile = &CompileConfig{}
	}
	if c.Compile.SingBoxPath == "" {
		c.Compile.SingBoxPath = "sing-box"
	}
	if c.Compile.TimeoutSeconds == 0 {
		c.Compile.TimeoutSeconds = 60
	}

	if c.Publish == nil {
		c.Publish = &PublishConfig{}
	}
	if c.Publish.NameTemplate == "" {
		c.Publish.NameTemplate = "{{name}}-{{type}}.{{ext}}"
	}

	if c.Server == nil {
		c.Server = &ServerConfig{}
	}
	if c.Server.Listen == "" {
		c.Server.Listen = "127.0.0.1:8801"
	}

	if c.Check == nil {
		c.Check = &CheckConfig{}
	}
	if len(c.Check.Upstreams) == 0 {
		c.Check.Upstreams = []string{"udp://1.1.1.1:53"}
	}
	if c.Check.TimeoutMS == 0 {
		c.Check.TimeoutMS = 3000
	}
}
