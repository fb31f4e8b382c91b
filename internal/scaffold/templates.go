package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Template file names, both in the embedded set and in an override directory.
const (
	BuildTemplateName = "CMakeLists.txt.tmpl"
	EntryTemplateName = "main.cpp.tmpl"
)

// Templates holds the bodies used to generate a project.
type Templates struct {
	// Build is rendered with the project name before being written.
	Build string
	// Entry is written verbatim.
	Entry string
}

// DefaultTemplates returns the embedded templates.
func DefaultTemplates() Templates {
	t, err := readTemplates(templateFS, "templates")
	if err != nil {
		// The embedded set is fixed at build time.
		panic(fmt.Sprintf("embedded templates: %v", err))
	}
	return t
}

// LoadTemplates reads overrides from dir. A template missing from dir falls
// back to the embedded default. An empty dir returns the defaults.
func LoadTemplates(dir string) (Templates, error) {
	t := DefaultTemplates()
	if dir == "" {
		return t, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return Templates{}, fmt.Errorf("reading templates directory: %w", err)
	}
	if !info.IsDir() {
		return Templates{}, fmt.Errorf("templates directory %s is not a directory", dir)
	}

	overrides := os.DirFS(dir)
	if body, ok, err := readOptional(overrides, BuildTemplateName); err != nil {
		return Templates{}, err
	} else if ok {
		t.Build = body
	}
	if body, ok, err := readOptional(overrides, EntryTemplateName); err != nil {
		return Templates{}, err
	} else if ok {
		t.Entry = body
	}
	return t, nil
}

// Render replaces every occurrence of placeholder in tmpl with name. It is a
// literal substring replacement; no other syntax is interpreted.
func Render(tmpl, placeholder, name string) string {
	return strings.ReplaceAll(tmpl, placeholder, name)
}

func readTemplates(fsys fs.FS, root string) (Templates, error) {
	build, err := fs.ReadFile(fsys, root+"/"+BuildTemplateName)
	if err != nil {
		return Templates{}, fmt.Errorf("reading template %s: %w", BuildTemplateName, err)
	}
	entry, err := fs.ReadFile(fsys, root+"/"+EntryTemplateName)
	if err != nil {
		return Templates{}, fmt.Errorf("reading template %s: %w", EntryTemplateName, err)
	}
	return Templates{Build: string(build), Entry: string(entry)}, nil
}

func readOptional(fsys fs.FS, name string) (string, bool, error) {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading template %s: %w", name, err)
	}
	return string(data), true, nil
}
