package registry

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/horizon-engine/newproject/internal/platform"
)

var subdirPattern = regexp.MustCompile(`^\s*add_subdirectory\(\s*([^)\s]+)\s*\)`)

// Line returns the registration directive for a subproject.
func Line(name string) string {
	return fmt.Sprintf("add_subdirectory(%s)", name)
}

// Append registers name at the end of the aggregator file. The file is
// opened in append mode and created if missing; existing content is never
// modified. No duplicate check is performed.
func Append(path, name string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, platform.FilePerm)
	if err != nil {
		return fmt.Errorf("opening aggregator %s: %w", path, err)
	}

	if _, err := f.WriteString("\n" + Line(name)); err != nil {
		f.Close()
		return fmt.Errorf("appending to aggregator %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing aggregator %s: %w", path, err)
	}
	return nil
}

// Entries returns the subdirectories registered in the aggregator, in file
// order. A missing aggregator yields an empty list.
func Entries(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening aggregator %s: %w", path, err)
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if m := subdirPattern.FindStringSubmatch(scanner.Text()); m != nil {
			entries = append(entries, m[1])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading aggregator %s: %w", path, err)
	}
	return entries, nil
}
