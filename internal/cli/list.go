package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"text/tabwriter"

	"github.com/horizon-engine/newproject/internal/config"
	"github.com/horizon-engine/newproject/internal/registry"
)

// listEntry is one subproject as seen on disk and in the aggregator.
type listEntry struct {
	Name       string `json:"name"`
	Directory  bool   `json:"directory"`
	Registered bool   `json:"registered"`
}

// runList prints directories under the projects root and whether each one is
// registered with add_subdirectory() in the aggregator. Registered names
// without a directory entry are listed too.
func (a *app) runList(out io.Writer) error {
	entries, err := collectProjects(a.settings)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintf(out, "No projects found in %s\n", a.settings.ProjectsDir)
		return nil
	}

	if a.jsonOutput {
		return printListJSON(out, entries)
	}
	return printListTable(out, entries)
}

// collectProjects merges project directories with aggregator entries, sorted by name.
func collectProjects(s *config.Settings) ([]listEntry, error) {
	registered, err := registry.Entries(s.AggregatorPath())
	if err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(s.ProjectsDir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading projects directory: %w", err)
	}

	byName := make(map[string]*listEntry)
	for _, d := range dirEntries {
		if !d.IsDir() {
			continue
		}
		byName[d.Name()] = &listEntry{
			Name:       d.Name(),
			Directory:  true,
			Registered: slices.Contains(registered, d.Name()),
		}
	}
	for _, name := range registered {
		if _, ok := byName[name]; ok {
			continue
		}
		// Nested registrations such as add_subdirectory(tools/gen) are not
		// in the top-level listing.
		info, err := os.Stat(s.ProjectDir(name))
		byName[name] = &listEntry{
			Name:       name,
			Directory:  err == nil && info.IsDir(),
			Registered: true,
		}
	}

	entries := make([]listEntry, 0, len(byName))
	for _, e := range byName {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func printListTable(out io.Writer, entries []listEntry) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tDIRECTORY\tREGISTERED")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, yesNo(e.Directory), yesNo(e.Registered))
	}
	return w.Flush()
}

func printListJSON(out io.Writer, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
