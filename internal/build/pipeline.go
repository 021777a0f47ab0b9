package build

import (
	"fmt"
	"os"

	"github.com/geoset/geoset/internal/config"
	"github.com/geoset/geoset/internal/errors"
	"github.com/geoset/geoset/internal/hashing"
	"github.com/geoset/geoset/internal/log"
	"github.com/geoset/geoset/internal/rules"
	"github.com/geoset/geoset/internal/ruleset"
	"github.com/geoset/geoset/internal/source"
	"github.com/geoset/geoset/internal/utils"
)

// buildList runs the pipeline of one list end-to-end: collect raw lines
// from every source, filter excluded attributes, normalize, dedup,
// subtract the remove set, classify, and emit the selected artifacts.
func (b *Builder) buildList(list *config.ListConfig) *ListOutcome {
	outcome := &ListOutcome{List: list.Name}

	raw := b.collectLines(list, outcome)

	filtered := source.FilterAttrs(raw, list.EffectiveExcludeAttrs(b.cfg))
	lines := rules.Dedup(source.NormalizeAll(filtered))

	if remove := b.collectRemoveLines(list, outcome); len(remove) > 0 {
		lines = rules.Difference(lines, remove)
	}

	parsed := make([]rules.Rule, 0, len(lines))
	for _, line := range lines {
		if rule, ok := source.Normalize(line); ok {
			parsed = append(parsed, rule)
		}
	}
	buckets, tlds := rules.Classify(parsed)

	outcome.Counts = ListCounts{
		Suffix:  len(buckets.Suffix),
		Full:    len(buckets.Full),
		Regex:   len(buckets.Regex),
		Keyword: len(buckets.Keyword),
		TLD:     len(tlds),
	}

	if err := b.emit(list, lines, buckets, tlds, outcome); err != nil {
		outcome.Err = err
	}
	return outcome
}

// collectLines merges every configured source of the list into one raw
// line stream, in configuration order. Missing inputs contribute
// nothing and leave a warning on the outcome.
func (b *Builder) collectLines(list *config.ListConfig, outcome *ListOutcome) []string {
	var lines []string

	if len(list.Sources) > 0 {
		expander := source.NewExpander(b.cfg.GetAbsDataDir())
		for _, name := range list.Sources {
			lines = append(lines, expander.Expand(name)...)
		}
		outcome.Warnings = append(outcome.Warnings, expander.Warnings()...)
	}

	for _, file := range list.Files {
		lines = append(lines, b.readSourceFile(file.AbsFilePath(b.cfg), file.Format, outcome)...)
	}

	for i, url := range list.URLs {
		path := list.URLCachePath(b.cfg, i)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			outcome.Warnings = append(outcome.Warnings,
				fmt.Sprintf("URL source %s is not cached yet, run the download command first", url.URL))
			continue
		}
		lines = append(lines, b.readSourceFile(path, url.Format, outcome)...)
	}

	lines = append(lines, list.Entries...)
	return lines
}

// collectRemoveLines builds the normalized subtraction set of the list.
func (b *Builder) collectRemoveLines(list *config.ListConfig, outcome *ListOutcome) []string {
	var lines []string

	if len(list.RemoveSources) > 0 {
		expander := source.NewExpander(b.cfg.GetAbsDataDir())
		for _, name := range list.RemoveSources {
			lines = append(lines, expander.Expand(name)...)
		}
		outcome.Warnings = append(outcome.Warnings, expander.Warnings()...)
	}

	lines = append(lines, list.RemoveEntries...)
	if len(lines) == 0 {
		return nil
	}
	return rules.Dedup(source.NormalizeAll(lines))
}

func (b *Builder) readSourceFile(path, format string, outcome *ListOutcome) []string {
	file, err := os.Open(path)
	if err != nil {
		outcome.Warnings = append(outcome.Warnings, fmt.Sprintf("source file %q is not readable: %v", path, err))
		return nil
	}
	defer utils.CloseOrWarn(file)

	lines, err := source.ParseFormat(format, file)
	if err != nil {
		outcome.Warnings = append(outcome.Warnings, fmt.Sprintf("failed to parse %q: %v", path, err))
		return nil
	}
	return lines
}

// emit writes the artifacts selected by the list's output config.
func (b *Builder) emit(list *config.ListConfig, lines []string, buckets rules.Buckets, tlds []string, outcome *ListOutcome) error {
	outputs := list.Outputs()

	if outputs.Text {
		path := ArtifactPath(b.cfg, list.Name, ArtifactText)
		if err := b.writeArtifact(outcome, ArtifactText, path, ruleset.EncodeText(lines)); err != nil {
			return err
		}
	}

	if outputs.Ruleset {
		data, err := ruleset.New(buckets).Encode()
		if err != nil {
			return errors.NewInternalError(fmt.Sprintf("failed to encode rule-set document for list \"%s\"", list.Name), err)
		}
		path := ArtifactPath(b.cfg, list.Name, ArtifactRuleset)
		if err := b.writeArtifact(outcome, ArtifactRuleset, path, data); err != nil {
			return err
		}
	}

	if outputs.Clash {
		data, err := ruleset.EncodeClash(buckets)
		if err != nil {
			return errors.NewInternalError(fmt.Sprintf("failed to encode clash provider for list \"%s\"", list.Name), err)
		}
		path := ArtifactPath(b.cfg, list.Name, ArtifactClash)
		if err := b.writeArtifact(outcome, ArtifactClash, path, data); err != nil {
			return err
		}
	}

	if outputs.TLD {
		path := ArtifactPath(b.cfg, list.Name, ArtifactTLD)
		if err := b.writeArtifact(outcome, ArtifactTLD, path, ruleset.EncodeText(tlds)); err != nil {
			return err
		}
	}

	return nil
}

// writeArtifact writes data to path unless the md5 sidecar shows the
// content is unchanged. The artifact is recorded on the outcome either
// way.
func (b *Builder) writeArtifact(outcome *ListOutcome, typ, path string, data []byte) error {
	sum := hashing.BytesChecksum(data)

	if changed, err := hashing.IsFileChanged(sum, path); err != nil {
		log.Errorf("Failed to compare artifact checksum for %s: %v", path, err)
	} else if !changed {
		log.Debugf("Artifact %s is not changed, skipping write to disk", path)
		outcome.Artifacts = append(outcome.Artifacts, Artifact{Type: typ, Path: path})
		return nil
	}

	if err := utils.WriteFileAtomic(path, data, 0644); err != nil {
		return errors.NewListError(fmt.Sprintf("failed to write artifact %s", path), err)
	}
	if err := hashing.WriteChecksum(sum, path); err != nil {
		return errors.NewListError(fmt.Sprintf("failed to write artifact checksum for %s", path), err)
	}

	outcome.Changed = true
	outcome.Artifacts = append(outcome.Artifacts, Artifact{Type: typ, Path: path, Changed: true})
	return nil
}
