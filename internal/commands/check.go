package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/geoset/geoset/internal/build"
	"github.com/geoset/geoset/internal/compile"
	"github.com/geoset/geoset/internal/config"
	"github.com/geoset/geoset/internal/dnscheck"
	"github.com/geoset/geoset/internal/log"
	"github.com/geoset/geoset/internal/rules"
	"github.com/geoset/geoset/internal/source"
)

func CreateCheckCommand() *CheckCommand {
	gc := &CheckCommand{
		fs: flag.NewFlagSet("check", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.List, "list", "", "Only check the named list")
	gc.fs.BoolVar(&gc.Resolve, "resolve", false, "Resolve built full/suffix rules against DNS upstreams to find dead domains")
	gc.fs.IntVar(&gc.Sample, "sample", 0, "Override the configured sample size for the DNS audit (0 = use config)")

	return gc
}

type CheckCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	List    string
	Resolve bool
	Sample  int
}

func (g *CheckCommand) Name() string {
	return g.fs.Name()
}

func (g *CheckCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	if g.List != "" && g.cfg.GetList(g.List) == nil {
		return fmt.Errorf("list \"%s\" is not configured", g.List)
	}

	return nil
}

func (g *CheckCommand) Run() error {
	log.Infof("Running configuration check...")

	hasFailures := false

	dataDir := g.cfg.GetAbsDataDir()
	if stat, err := os.Stat(dataDir); err != nil || !stat.IsDir() {
		log.Errorf("Community data directory is not accessible: %s", dataDir)
		hasFailures = true
	} else {
		log.Infof("Community data directory: %s", dataDir)
	}

	for _, list := range g.selectedLists() {
		if !g.checkList(list) {
			hasFailures = true
		}
	}

	if g.cfg.Compile != nil && g.cfg.Compile.Enabled {
		if err := compile.New(g.cfg.Compile).CheckExecutable(); err != nil {
			log.Errorf("Rule-set compiler is not available: %v", err)
			hasFailures = true
		} else {
			log.Infof("Rule-set compiler is available")
		}
	}

	if g.Resolve {
		if err := g.resolveLists(); err != nil {
			return err
		}
	}

	if hasFailures {
		log.Errorf("Check completed with failures")
		return fmt.Errorf("check failed")
	}

	log.Infof("Check completed successfully")
	return nil
}

// checkList verifies that every configured input of the list is present
// on disk and reports the state of its artifacts.
func (g *CheckCommand) checkList(list *config.ListConfig) bool {
	log.Infof("----------------- List [%s] ------------------", list.Name)
	ok := true

	dataDir := g.cfg.GetAbsDataDir()
	for _, name := range list.Sources {
		path := filepath.Join(dataDir, name)
		if _, err := os.Stat(path); err != nil {
			log.Errorf("Community source \"%s\" is missing (%s)", name, path)
			ok = false
		}
	}

	for _, file := range list.Files {
		if _, err := os.Stat(file.AbsFilePath(g.cfg)); err != nil {
			log.Errorf("File source \"%s\" is not readable", file.Path)
			ok = false
		}
	}

	for i, url := range list.URLs {
		if _, err := os.Stat(list.URLCachePath(g.cfg, i)); err != nil {
			log.Warnf("URL source %s is not cached yet, run the download command first", url.URL)
		}
	}

	for _, artifact := range build.ExpectedArtifacts(g.cfg, list) {
		if stat, err := os.Stat(artifact.Path); err == nil {
			log.Infof("Artifact [%s] %s (%d bytes)", artifact.Type, artifact.Path, stat.Size())
		} else {
			log.Infof("Artifact [%s] %s (not built)", artifact.Type, artifact.Path)
		}
	}

	return ok
}

// resolveLists audits the built full and suffix rules of each selected
// list against the configured DNS upstreams.
func (g *CheckCommand) resolveLists() error {
	checkCfg := g.cfg.Check
	if g.Sample > 0 {
		override := config.CheckConfig{}
		if checkCfg != nil {
			override = *checkCfg
		}
		override.SampleSize = g.Sample
		checkCfg = &override
	}

	checker, err := dnscheck.New(checkCfg)
	if err != nil {
		return err
	}

	totalDead := 0
	for _, list := range g.selectedLists() {
		domains, err := g.auditDomains(list)
		if err != nil {
			log.Warnf("List \"%s\": %v", list.Name, err)
			continue
		}
		if len(domains) == 0 {
			continue
		}

		log.Infof("Resolving domains of list \"%s\"...", list.Name)
		results := checker.CheckList(context.Background(), domains)

		dead := 0
		for _, result := range results {
			if result.Err != nil {
				log.Warnf("List \"%s\": %s: %v", list.Name, result.Domain, result.Err)
				continue
			}
			if !result.Alive {
				log.Warnf("List \"%s\": %s is dead (%s)", list.Name, result.Domain, result.Rcode)
				dead++
			}
		}
		totalDead += dead
		log.Infof("List \"%s\": %d of %d checked domain(s) did not resolve", list.Name, dead, len(results))
	}

	if totalDead > 0 {
		return fmt.Errorf("%d dead domain(s) found", totalDead)
	}
	return nil
}

// auditDomains extracts the resolvable FQDNs from the built text
// artifact of a list: full and suffix rules whose value passes FQDN
// validation.
func (g *CheckCommand) auditDomains(list *config.ListConfig) ([]string, error) {
	path := build.ArtifactPath(g.cfg, list.Name, build.ArtifactText)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("text artifact is not built yet, run the build command first")
		}
		return nil, err
	}

	var parsed []rules.Rule
	for _, line := range strings.Split(string(data), "\n") {
		if rule, ok := source.Normalize(line); ok {
			parsed = append(parsed, rule)
		}
	}

	var domains []string
	for _, rule := range rules.Reserve(parsed, rules.Full, rules.Suffix) {
		if rules.IsFQDN(rule.Value) {
			domains = append(domains, rule.Value)
		}
	}
	return domains, nil
}

func (g *CheckCommand) selectedLists() []*config.ListConfig {
	if g.List == "" {
		return g.cfg.Lists
	}
	return []*config.ListConfig{g.cfg.GetList(g.List)}
}
