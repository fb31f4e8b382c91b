package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestChmod(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "main.cpp")
	if err := os.WriteFile(path, []byte("int main() {}"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(path, FilePerm); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != FilePerm {
			t.Errorf("permissions = %o, want %o", perm, FilePerm)
		}
	}
}

func TestChmodDir(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "alpha")
	if err := os.Mkdir(dir, 0700); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(dir, DirPerm); err != nil {
		t.Fatalf("Chmod on dir failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != DirPerm {
			t.Errorf("permissions = %o, want %o", perm, DirPerm)
		}
	}
}

func TestChmodMissingPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Chmod is a no-op on windows")
	}
	if err := Chmod(filepath.Join(t.TempDir(), "missing"), FilePerm); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestFileModeIn(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not applied on windows")
	}
	dir := filepath.Join(t.TempDir(), "alpha")
	if err := os.Mkdir(dir, 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(dir, 0750); err != nil {
		t.Fatal(err)
	}

	mode, err := FileModeIn(dir)
	if err != nil {
		t.Fatalf("FileModeIn failed: %v", err)
	}
	if mode != 0640 {
		t.Errorf("FileModeIn() = %o, want 640", mode)
	}
}

func TestFileModeInMissingDir(t *testing.T) {
	if _, err := FileModeIn(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}
