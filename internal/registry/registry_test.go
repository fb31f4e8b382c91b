package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLine(t *testing.T) {
	if got := Line("alpha"); got != "add_subdirectory(alpha)" {
		t.Errorf("Line() = %q", got)
	}
}

func TestAppend_PreservesExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CMakeLists.txt")
	existing := "cmake_minimum_required(VERSION 3.10)\nadd_subdirectory(basic)\nadd_subdirectory(test)"
	if err := os.WriteFile(path, []byte(existing), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Append(path, "alpha"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := existing + "\nadd_subdirectory(alpha)"
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("aggregator mismatch (-want +got):\n%s", diff)
	}
}

func TestAppend_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CMakeLists.txt")

	if err := Append(path, "alpha"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "\nadd_subdirectory(alpha)" {
		t.Errorf("content = %q", string(data))
	}
}

func TestAppend_MissingParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "CMakeLists.txt")
	if err := Append(path, "alpha"); err == nil {
		t.Fatal("expected error when parent directory is missing")
	}
}

func TestAppend_NotIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CMakeLists.txt")
	for i := 0; i < 2; i++ {
		if err := Append(path, "alpha"); err != nil {
			t.Fatalf("Append #%d failed: %v", i+1, err)
		}
	}

	entries, err := Entries(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"alpha", "alpha"}, entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CMakeLists.txt")
	content := strings.Join([]string{
		"cmake_minimum_required(VERSION 3.10)",
		"",
		"add_subdirectory(basic)",
		"  add_subdirectory( diffuse )",
		"# add_subdirectory(disabled)",
		"add_subdirectory(rtiw)",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := Entries(path)
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	want := []string{"basic", "diffuse", "rtiw"}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestEntries_MissingFile(t *testing.T) {
	entries, err := Entries(filepath.Join(t.TempDir(), "CMakeLists.txt"))
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %v", entries)
	}
}
