package publish

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/geoset/geoset/internal/config"
	"github.com/geoset/geoset/internal/errors"
	"github.com/geoset/geoset/internal/log"
	"github.com/geoset/geoset/internal/utils"
)

// Artifact is a built file eligible for publishing.
type Artifact struct {
	List string // list name
	Type string // artifact type: text, ruleset, clash, tld or srs
	Path string // absolute path of the built file
}

// Publisher copies built artifacts into the distribution directory,
// naming each one through the configured template.
type Publisher struct {
	outputDir string
	template  string
}

func New(cfg *config.Config) *Publisher {
	return &Publisher{
		outputDir: utils.GetAbsolutePath(cfg.Publish.OutputDir, cfg.GetConfigDir()),
		template:  cfg.Publish.NameTemplate,
	}
}

// RenderName renders the publish name template for one artifact.
func (p *Publisher) RenderName(a Artifact) string {
	if !strings.Contains(p.template, "{{") {
		return p.template
	}

	t := fasttemplate.New(p.template, "{{", "}}")
	return t.ExecuteString(map[string]interface{}{
		config.PUBLISH_TMPL_NAME: a.List,
		config.PUBLISH_TMPL_TYPE: a.Type,
		config.PUBLISH_TMPL_EXT:  strings.TrimPrefix(filepath.Ext(a.Path), "."),
	})
}

// Publish copies all artifacts into the distribution directory.
// Rendered names must be unique across artifacts.
func (p *Publisher) Publish(artifacts []Artifact) error {
	if len(artifacts) == 0 {
		return nil
	}

	if err := utils.EnsureDir(p.outputDir); err != nil {
		return errors.NewPublishError("failed to create publish directory", err)
	}

	seen := make(map[string]Artifact, len(artifacts))
	for _, artifact := range artifacts {
		name := p.RenderName(artifact)
		if prev, ok := seen[name]; ok {
			return errors.NewPublishError(fmt.Sprintf("publish name %q collides for %s and %s",
				name, prev.Path, artifact.Path), nil)
		}
		seen[name] = artifact

		data, err := os.ReadFile(artifact.Path)
		if err != nil {
			return errors.NewPublishError(fmt.Sprintf("failed to read artifact %s", artifact.Path), err)
		}

		target := filepath.Join(p.outputDir, name)
		if err := utils.WriteFileAtomic(target, data, 0644); err != nil {
			return errors.NewPublishError(fmt.Sprintf("failed to publish artifact to %s", target), err)
		}

		log.Debugf("Published %s as %s", artifact.Path, target)
	}

	log.Infof("Published %d artifact(s) to %s", len(artifacts), p.outputDir)
	return nil
}
