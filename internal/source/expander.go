package source

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/geoset/geoset/internal/utils"
)

// Expander resolves include: directives in community data files into a
// flat rule-line stream. One Expander serves one expansion chain; the
// visited set guards against include cycles within that chain and is
// never shared across unrelated expansions.
type Expander struct {
	baseDir  string
	warnings []string
}

// NewExpander creates an Expander rooted at the community data directory.
func NewExpander(baseDir string) *Expander {
	return &Expander{baseDir: baseDir}
}

// Expand reads the named file under the base directory and returns its
// rule lines with comments and blanks dropped and include: directives
// recursively spliced in place. Missing targets and cycles yield empty
// sequences and a collected warning, never an error.
func (e *Expander) Expand(name string) []string {
	return e.expand(name, make(map[string]bool))
}

// Warnings returns the diagnostics collected by previous Expand calls.
func (e *Expander) Warnings() []string {
	return e.warnings
}

func (e *Expander) expand(name string, visited map[string]bool) []string {
	path := filepath.Clean(filepath.Join(e.baseDir, name))

	if visited[path] {
		e.warnings = append(e.warnings, fmt.Sprintf("circular include of %q, truncating expansion", name))
		return nil
	}
	visited[path] = true

	file, err := os.Open(path)
	if err != nil {
		e.warnings = append(e.warnings, fmt.Sprintf("include target %q is not readable: %v", name, err))
		return nil
	}
	defer utils.CloseOrWarn(file)

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "include:") {
			target := strings.TrimPrefix(line, "include:")
			// An include directive may carry trailing annotations; the
			// target name is the first field.
			if fields := strings.Fields(target); len(fields) > 0 {
				lines = append(lines, e.expand(fields[0], visited)...)
			}
			continue
		}

		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		e.warnings = append(e.warnings, fmt.Sprintf("error reading %q: %v", name, err))
	}

	return lines
}
