package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/geoset/geoset/internal/build"
	"github.com/geoset/geoset/internal/config"
)

func CreateBuildCommand() *BuildCommand {
	gc := &BuildCommand{
		fs: flag.NewFlagSet("build", flag.ExitOnError),
	}

	gc.fs.BoolVar(&gc.FailOnWarnings, "fail-on-warnings", false, "Exit with an error when any list produced warnings")

	return gc
}

type BuildCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	FailOnWarnings bool
}

func (g *BuildCommand) Name() string {
	return g.fs.Name()
}

func (g *BuildCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *BuildCommand) Run() error {
	summary, err := build.NewBuilder(g.cfg).Run(context.Background())
	if err != nil {
		return err
	}

	if failed := summary.Failed(); failed > 0 {
		return fmt.Errorf("%d list(s) failed to build", failed)
	}
	if g.FailOnWarnings && summary.WarningCount() > 0 {
		return fmt.Errorf("build produced %d warning(s)", summary.WarningCount())
	}

	return nil
}
