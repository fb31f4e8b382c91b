package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/horizon-engine/newproject/internal/config"
	"github.com/horizon-engine/newproject/internal/registry"
	"github.com/horizon-engine/newproject/internal/scaffold"
	"github.com/horizon-engine/newproject/internal/toolchain"
	"github.com/spf13/cobra"
)

func (a *app) runDoctor(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	problems := runDoctor(cmd.Context(), out, a.settings, a.cmakeBin)
	if problems > 0 {
		fmt.Fprintf(out, "\n%d problem(s) found.\n", problems)
	} else {
		fmt.Fprintln(out, "\nAll checks passed.")
	}
	return nil
}

// runDoctor prints one status line per check and returns the number of
// [MISS]/[FAIL] results. Warnings are not counted.
func runDoctor(ctx context.Context, w io.Writer, s *config.Settings, cmakeBin string) int {
	problems := 0

	fmt.Fprintln(w, "Configuration:")
	if s.Source != "" {
		fmt.Fprintf(w, "  [ OK ] %s is valid\n", s.Source)
	} else {
		fmt.Fprintln(w, "  [ OK ] No config file, using defaults")
	}

	fmt.Fprintln(w, "Projects tree:")
	if !checkDir(w, s.ProjectsDir) {
		problems++
	}
	aggregator := s.AggregatorPath()
	if info, err := os.Stat(aggregator); err != nil {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", aggregator)
		problems++
	} else if info.IsDir() {
		fmt.Fprintf(w, "  [FAIL] %s is a directory\n", aggregator)
		problems++
	} else {
		entries, err := registry.Entries(aggregator)
		if err != nil {
			fmt.Fprintf(w, "  [FAIL] %v\n", err)
			problems++
		} else {
			fmt.Fprintf(w, "  [ OK ] %s (%d registered)\n", aggregator, len(entries))
			warnDuplicates(w, entries)
			warnMissing(w, s, entries)
		}
	}

	fmt.Fprintln(w, "Templates:")
	templates, err := scaffold.LoadTemplates(s.TemplatesDir)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return problems + 1
	}
	if s.TemplatesDir != "" {
		fmt.Fprintf(w, "  [ OK ] Using overrides from %s\n", s.TemplatesDir)
	}
	if n := strings.Count(templates.Build, s.Placeholder); n == 0 {
		fmt.Fprintf(w, "  [WARN] Build template does not contain placeholder %s\n", s.Placeholder)
	} else {
		fmt.Fprintf(w, "  [ OK ] Build template has %d %s placeholder(s)\n", n, s.Placeholder)
	}

	fmt.Fprintln(w, "Toolchain:")
	want, ok := toolchain.RequiredCMake(templates.Build)
	have, err := toolchain.CMakeVersion(ctx, cmakeBin)
	switch {
	case err != nil:
		fmt.Fprintf(w, "  [MISS] %v\n", err)
		problems++
	case !ok:
		fmt.Fprintf(w, "  [ OK ] cmake %s (template declares no minimum)\n", have)
	default:
		satisfied, cmpErr := toolchain.Satisfies(have, want)
		switch {
		case cmpErr != nil:
			fmt.Fprintf(w, "  [WARN] Could not compare cmake versions: %v\n", cmpErr)
		case !satisfied:
			fmt.Fprintf(w, "  [FAIL] cmake %s is older than required %s\n", have, want)
			problems++
		default:
			fmt.Fprintf(w, "  [ OK ] cmake %s (requires %s)\n", have, want)
		}
	}

	return problems
}

func checkDir(w io.Writer, path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		return false
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return false
	}
	if !info.IsDir() {
		fmt.Fprintf(w, "  [FAIL] %s exists but is not a directory\n", path)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", path)
	return true
}

// warnDuplicates flags names registered more than once, which happens when a
// project directory is deleted by hand and scaffolded again.
func warnDuplicates(w io.Writer, entries []string) {
	seen := make(map[string]int)
	for _, e := range entries {
		seen[e]++
		if seen[e] == 2 {
			fmt.Fprintf(w, "  [WARN] %s is registered more than once\n", e)
		}
	}
}

// warnMissing flags registered names whose directory is gone.
func warnMissing(w io.Writer, s *config.Settings, entries []string) {
	seen := make(map[string]bool)
	for _, e := range entries {
		if seen[e] {
			continue
		}
		seen[e] = true
		dir := s.ProjectDir(e)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			fmt.Fprintf(w, "  [WARN] %s is registered but %s is missing\n", e, dir)
		}
	}
}
