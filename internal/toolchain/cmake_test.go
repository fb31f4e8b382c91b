package toolchain

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestRequiredCMake(t *testing.T) {
	tests := []struct {
		name   string
		tmpl   string
		want   string
		wantOK bool
	}{
		{"plain", "cmake_minimum_required(VERSION 3.10)\nproject(x)", "3.10", true},
		{"lowercase keyword", "cmake_minimum_required(version 3.16.2)", "3.16.2", true},
		{"range", "cmake_minimum_required(VERSION 3.10...3.28)", "3.10", true},
		{"spaces", "cmake_minimum_required( VERSION 3.5 FATAL_ERROR )", "3.5", true},
		{"missing", "project(x)", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RequiredCMake(tt.tmpl)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("RequiredCMake() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseVersionOutput(t *testing.T) {
	out := "cmake version 3.28.3\n\nCMake suite maintained and supported by Kitware (kitware.com/cmake).\n"
	got, err := ParseVersionOutput(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "3.28.3" {
		t.Errorf("ParseVersionOutput() = %q, want %q", got, "3.28.3")
	}

	if _, err := ParseVersionOutput("bash: cmake: command not found"); err == nil {
		t.Error("expected error for unrecognized output")
	}
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		name    string
		have    string
		want    string
		ok      bool
		wantErr bool
	}{
		{"newer", "3.28.3", "3.10", true, false},
		{"equal", "3.10.0", "3.10", true, false},
		{"older", "3.5.1", "3.10", false, false},
		{"v prefix", "v3.20.0", "3.10", true, false},
		{"invalid installed", "unknown", "3.10", false, true},
		{"invalid required", "3.28.3", "latest", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := Satisfies(tt.have, tt.want)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.ok {
				t.Errorf("Satisfies(%q, %q) = %v, want %v", tt.have, tt.want, ok, tt.ok)
			}
		})
	}
}

func TestCMakeVersion_FakeBinary(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stub requires a unix shell")
	}
	dir := t.TempDir()
	bin := filepath.Join(dir, "cmake")
	script := "#!/bin/sh\necho 'cmake version 3.27.1'\n"
	if err := os.WriteFile(bin, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := CMakeVersion(context.Background(), bin)
	if err != nil {
		t.Fatalf("CMakeVersion failed: %v", err)
	}
	if got != "3.27.1" {
		t.Errorf("CMakeVersion() = %q, want %q", got, "3.27.1")
	}
}

func TestCMakeVersion_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if _, err := CMakeVersion(context.Background(), ""); err == nil {
		t.Error("expected error when cmake is not on PATH")
	}
}
