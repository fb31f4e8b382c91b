package scaffold

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/horizon-engine/newproject/internal/platform"
	"github.com/horizon-engine/newproject/internal/registry"
	"github.com/natefinch/atomic"
)

// ErrAlreadyExists is returned when the project directory is already present.
var ErrAlreadyExists = errors.New("project already exists")

// Options describes one project to create.
type Options struct {
	Name        string // used verbatim as directory name and template value
	ProjectsDir string // root holding every subproject and the aggregator
	BuildFile   string // e.g., "CMakeLists.txt"; also the aggregator file name
	EntryFile   string // e.g., "main.cpp"
	Placeholder string // token replaced in the build template, e.g., "[[[name]]]"
	Templates   Templates

	// Out receives progress lines. Nil discards them.
	Out io.Writer
}

// Result holds the outcome of a successful Create.
type Result struct {
	Dir        string
	Files      []string
	Aggregator string
}

// Create generates a new project. It checks for an existing directory before
// touching the filesystem; after that, steps run in order and the first
// error aborts without undoing earlier steps.
func Create(opts Options) (*Result, error) {
	w := opts.Out
	if w == nil {
		w = io.Discard
	}

	dir := filepath.Join(opts.ProjectsDir, opts.Name)
	if _, err := os.Lstat(dir); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, dir)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("checking %s: %w", dir, err)
	}

	if err := os.Mkdir(dir, platform.DirPerm); err != nil {
		return nil, fmt.Errorf("creating project directory %s: %w", dir, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", dir)

	fileMode, err := platform.FileModeIn(dir)
	if err != nil {
		return nil, fmt.Errorf("checking permissions on %s: %w", dir, err)
	}

	result := &Result{Dir: dir}

	buildPath := filepath.Join(dir, opts.BuildFile)
	if err := writeFile(buildPath, Render(opts.Templates.Build, opts.Placeholder, opts.Name), fileMode); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, opts.BuildFile)
	fmt.Fprintf(w, "  [ OK ] Created %s\n", buildPath)

	entryPath := filepath.Join(dir, opts.EntryFile)
	if err := writeFile(entryPath, opts.Templates.Entry, fileMode); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, opts.EntryFile)
	fmt.Fprintf(w, "  [ OK ] Created %s\n", entryPath)

	aggregator := filepath.Join(opts.ProjectsDir, opts.BuildFile)
	if err := registry.Append(aggregator, opts.Name); err != nil {
		return nil, err
	}
	result.Aggregator = aggregator
	fmt.Fprintf(w, "  [ OK ] Registered %s in %s\n", opts.Name, aggregator)

	return result, nil
}

// writeFile writes content through a temp file and rename, then applies
// mode (the temp file is created 0600).
func writeFile(path, content string, mode os.FileMode) error {
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := platform.Chmod(path, mode); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	return nil
}
