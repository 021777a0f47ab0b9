package build

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/geoset/geoset/internal/compile"
	"github.com/geoset/geoset/internal/config"
	"github.com/geoset/geoset/internal/errors"
	"github.com/geoset/geoset/internal/log"
	"github.com/geoset/geoset/internal/publish"
)

// Builder orchestrates the per-list pipelines of one build run.
type Builder struct {
	cfg *config.Config
}

func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{cfg: cfg}
}

// Run executes every list pipeline over a bounded worker pool, then the
// optional compile and publish steps. Per-list failures are collected
// in the summary and never stop sibling lists; the returned error is
// reserved for the data directory precondition, aggregate compile
// failure and publish failure.
func (b *Builder) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()

	dataDir := b.cfg.GetAbsDataDir()
	if stat, err := os.Stat(dataDir); err != nil {
		return nil, errors.NewDataDirError(fmt.Sprintf("community data directory %s is not accessible", dataDir), err)
	} else if !stat.IsDir() {
		return nil, errors.NewDataDirError(fmt.Sprintf("community data directory %s is not a directory", dataDir), nil)
	}

	workers := b.cfg.GetWorkers()
	log.Infof("Building %d list(s) with %d worker(s)", len(b.cfg.Lists), workers)

	outcomes := make([]*ListOutcome, len(b.cfg.Lists))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, list := range b.cfg.Lists {
		wg.Add(1)
		go func(i int, list *config.ListConfig) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if err := ctx.Err(); err != nil {
				outcomes[i] = &ListOutcome{List: list.Name, Err: err}
				return
			}
			outcomes[i] = b.buildList(list)
		}(i, list)
	}
	wg.Wait()

	summary := &Summary{Outcomes: outcomes}

	if err := ctx.Err(); err != nil {
		summary.Duration = time.Since(start)
		return summary, err
	}

	if b.cfg.Compile != nil && b.cfg.Compile.Enabled {
		summary.CompileErr = b.compileOutcomes(ctx, outcomes)
	}

	var publishErr error
	if summary.CompileErr == nil && b.cfg.Publish != nil && b.cfg.Publish.Enabled {
		publishErr = b.publishOutcomes(outcomes)
	}

	summary.Duration = time.Since(start)
	b.logSummary(summary)

	if summary.CompileErr != nil {
		return summary, summary.CompileErr
	}
	return summary, publishErr
}

// compileOutcomes compiles the rule-set document of every successful
// outcome. An unchanged document whose binary artifact already exists
// is skipped. Returns an aggregate error when any compilation failed.
func (b *Builder) compileOutcomes(ctx context.Context, outcomes []*ListOutcome) error {
	compiler := compile.New(b.cfg.Compile)
	if err := compiler.CheckExecutable(); err != nil {
		return err
	}

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			continue
		}

		var compiled []Artifact
		for _, artifact := range outcome.Artifacts {
			if artifact.Type != ArtifactRuleset {
				continue
			}

			dstPath := compile.OutputPath(artifact.Path)
			if !artifact.Changed {
				if _, err := os.Stat(dstPath); err == nil {
					log.Debugf("Rule-set %s is not changed, skipping compilation", artifact.Path)
					compiled = append(compiled, Artifact{Type: ArtifactSRS, Path: dstPath})
					continue
				}
			}

			if err := compiler.Compile(ctx, artifact.Path, dstPath); err != nil {
				log.Errorf("Failed to compile rule-set for list \"%s\": %v", outcome.List, err)
				outcome.Err = err
				failed++
				continue
			}
			compiled = append(compiled, Artifact{Type: ArtifactSRS, Path: dstPath, Changed: true})
		}
		outcome.Artifacts = append(outcome.Artifacts, compiled...)
	}

	if failed > 0 {
		return errors.NewCompileError(fmt.Sprintf("%d rule-set(s) failed to compile", failed), nil)
	}
	return nil
}

// publishOutcomes copies every artifact of every successful outcome to
// the publish directory.
func (b *Builder) publishOutcomes(outcomes []*ListOutcome) error {
	var artifacts []publish.Artifact
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			continue
		}
		for _, artifact := range outcome.Artifacts {
			artifacts = append(artifacts, publish.Artifact{List: outcome.List, Type: artifact.Type, Path: artifact.Path})
		}
	}

	return publish.New(b.cfg).Publish(artifacts)
}

// logSummary reports per-list results and collected warnings.
func (b *Builder) logSummary(summary *Summary) {
	for _, outcome := range summary.Outcomes {
		for _, warning := range outcome.Warnings {
			log.Warnf("List \"%s\": %s", outcome.List, warning)
		}

		if outcome.Err != nil {
			log.Errorf("List \"%s\" failed: %v", outcome.List, outcome.Err)
			continue
		}

		log.Infof("List \"%s\": %d rule(s) (%d suffix, %d full, %d regexp, %d keyword), %d TLD(s), %d artifact(s)",
			outcome.List, outcome.Counts.Total(), outcome.Counts.Suffix, outcome.Counts.Full,
			outcome.Counts.Regex, outcome.Counts.Keyword, outcome.Counts.TLD, len(outcome.Artifacts))
	}

	log.Infof("Build finished in %s: %d list(s), %d failed, %d warning(s)",
		summary.Duration.Round(time.Millisecond), len(summary.Outcomes), summary.Failed(), summary.WarningCount())
}
