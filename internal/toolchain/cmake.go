package toolchain

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DefaultCMake is the binary looked up on PATH.
const DefaultCMake = "cmake"

var (
	minimumPattern = regexp.MustCompile(`(?i)cmake_minimum_required\s*\(\s*VERSION\s+([0-9][0-9A-Za-z.\-]*)`)
	versionPattern = regexp.MustCompile(`cmake version\s+(\S+)`)
)

// RequiredCMake returns the version declared by cmake_minimum_required in a
// build template. A range such as "3.10...3.28" yields its lower bound.
func RequiredCMake(template string) (string, bool) {
	m := minimumPattern.FindStringSubmatch(template)
	if m == nil {
		return "", false
	}
	v, _, _ := strings.Cut(m[1], "...")
	return strings.TrimSuffix(v, "."), true
}

// ParseVersionOutput extracts the version from `cmake --version` output.
func ParseVersionOutput(out string) (string, error) {
	m := versionPattern.FindStringSubmatch(out)
	if m == nil {
		return "", fmt.Errorf("unrecognized cmake --version output: %q", strings.TrimSpace(out))
	}
	return m[1], nil
}

// CMakeVersion runs `<bin> --version` and returns the reported version.
// An empty bin means DefaultCMake.
func CMakeVersion(ctx context.Context, bin string) (string, error) {
	if bin == "" {
		bin = DefaultCMake
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("cmake not found: %w", err)
	}

	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("running %s --version: %w", path, err)
	}
	return ParseVersionOutput(string(out))
}

// Satisfies reports whether have is at least want.
func Satisfies(have, want string) (bool, error) {
	hv, err := parseSemver(have)
	if err != nil {
		return false, fmt.Errorf("parsing installed version %q: %w", have, err)
	}
	wv, err := parseSemver(want)
	if err != nil {
		return false, fmt.Errorf("parsing required version %q: %w", want, err)
	}
	return hv.Compare(wv) >= 0, nil
}

// parseSemver strips a leading "v" and parses the version string. Two-part
// versions such as "3.10" are accepted.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
