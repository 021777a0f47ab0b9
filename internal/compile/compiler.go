package compile

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/geoset/geoset/internal/config"
	"github.com/geoset/geoset/internal/errors"
	"github.com/geoset/geoset/internal/log"
)

const (
	defaultBinary  = "sing-box"
	defaultTimeout = 60 * time.Second
)

// Compiler invokes the sing-box binary to compile rule-set source
// documents into binary .srs artifacts.
type Compiler struct {
	binary  string
	timeout time.Duration
}

// New creates a Compiler from the compile config section, applying
// defaults when the section is absent.
func New(cfg *config.CompileConfig) *Compiler {
	c := &Compiler{binary: defaultBinary, timeout: defaultTimeout}
	if cfg != nil {
		if cfg.SingBoxPath != "" {
			c.binary = cfg.SingBoxPath
		}
		if cfg.TimeoutSeconds > 0 {
			c.timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
		}
	}
	return c
}

// CheckExecutable verifies that the compiler binary can be found.
func (c *Compiler) CheckExecutable() error {
	if _, err := exec.LookPath(c.binary); err != nil {
		return errors.NewCompileError(fmt.Sprintf("failed to find compiler command %s", c.binary), err)
	}
	return nil
}

// Compile compiles the rule-set source document at srcPath into dstPath.
func (c *Compiler) Compile(ctx context.Context, srcPath, dstPath string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.binary, "rule-set", "compile", srcPath, "-o", dstPath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errors.NewCompileError(fmt.Sprintf("failed to compile rule-set %s, output: %s",
			srcPath, strings.TrimSpace(string(output))), err)
	}

	log.Debugf("Compiled rule-set %s to %s", srcPath, dstPath)
	return nil
}

// OutputPath returns the binary artifact path for a rule-set source
// document path.
func OutputPath(srcPath string) string {
	return strings.TrimSuffix(srcPath, ".json") + ".srs"
}
