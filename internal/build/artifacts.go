package build

import (
	"path/filepath"

	"github.com/geoset/geoset/internal/compile"
	"github.com/geoset/geoset/internal/config"
)

// ArtifactPath returns where an artifact of the given type for the
// named list lives under the output directory.
func ArtifactPath(cfg *config.Config, listName, typ string) string {
	outDir := cfg.GetAbsOutputDir()
	switch typ {
	case ArtifactText:
		return filepath.Join(outDir, "text", listName+".txt")
	case ArtifactRuleset:
		return filepath.Join(outDir, "ruleset", listName+".json")
	case ArtifactClash:
		return filepath.Join(outDir, "clash", listName+".yaml")
	case ArtifactTLD:
		return filepath.Join(outDir, "tld", listName+".txt")
	case ArtifactSRS:
		return compile.OutputPath(ArtifactPath(cfg, listName, ArtifactRuleset))
	}
	return ""
}

// ExpectedArtifacts returns the artifact types and paths the list
// produces with its current output selection, including the compiled
// binary rule-set when compilation is enabled.
func ExpectedArtifacts(cfg *config.Config, list *config.ListConfig) []Artifact {
	outputs := list.Outputs()

	var artifacts []Artifact
	add := func(typ string) {
		artifacts = append(artifacts, Artifact{Type: typ, Path: ArtifactPath(cfg, list.Name, typ)})
	}

	if outputs.Text {
		add(ArtifactText)
	}
	if outputs.Ruleset {
		add(ArtifactRuleset)
		if cfg.Compile != nil && cfg.Compile.Enabled {
			add(ArtifactSRS)
		}
	}
	if outputs.Clash {
		add(ArtifactClash)
	}
	if outputs.TLD {
		add(ArtifactTLD)
	}
	return artifacts
}
