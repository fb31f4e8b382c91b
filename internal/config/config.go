package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/horizon-engine/newproject/internal/branding"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config keys. Flags use the same names with dashes.
const (
	KeyProjectsDir  = "projects_dir"
	KeyBuildFile    = "build_file"
	KeyEntryFile    = "entry_file"
	KeyPlaceholder  = "placeholder"
	KeyTemplatesDir = "templates_dir"
)

const fileType = "yaml"

// Defaults match the layout of the horizon tree.
const (
	DefaultProjectsDir = "projects"
	DefaultBuildFile   = "CMakeLists.txt"
	DefaultEntryFile   = "main.cpp"
	DefaultPlaceholder = "[[[name]]]"
)

// Settings is the resolved configuration.
type Settings struct {
	ProjectsDir  string `mapstructure:"projects_dir"`
	BuildFile    string `mapstructure:"build_file"`
	EntryFile    string `mapstructure:"entry_file"`
	Placeholder  string `mapstructure:"placeholder"`
	TemplatesDir string `mapstructure:"templates_dir"`

	// Source is the config file that was read, empty when none was found.
	Source string `mapstructure:"-"`
}

// AggregatorPath returns the parent build file that lists every subproject.
func (s *Settings) AggregatorPath() string {
	return filepath.Join(s.ProjectsDir, s.BuildFile)
}

// ProjectDir returns the directory a project with the given name lives in.
func (s *Settings) ProjectDir(name string) string {
	return filepath.Join(s.ProjectsDir, name)
}

// FlagName converts a config key to its command-line flag name.
func FlagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// FilePath returns the default config file location inside workDir.
func FilePath(workDir string) string {
	return filepath.Join(workDir, branding.ConfigFile())
}

// Load resolves settings relative to workDir. An explicit file must exist;
// otherwise the default file is read only when present. Flags that were
// registered under FlagName(key) override every other source.
func Load(workDir, explicitFile string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetDefault(KeyProjectsDir, DefaultProjectsDir)
	v.SetDefault(KeyBuildFile, DefaultBuildFile)
	v.SetDefault(KeyEntryFile, DefaultEntryFile)
	v.SetDefault(KeyPlaceholder, DefaultPlaceholder)
	v.SetDefault(KeyTemplatesDir, "")
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{KeyProjectsDir, KeyBuildFile, KeyEntryFile, KeyPlaceholder, KeyTemplatesDir} {
			if f := flags.Lookup(FlagName(key)); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag --%s: %w", f.Name, err)
				}
			}
		}
	}

	path := explicitFile
	if path == "" {
		path = FilePath(workDir)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			path = ""
		}
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	if path != "" {
		if err := readFile(v, path); err != nil {
			return nil, err
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	s.Source = path

	if s.Placeholder == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyPlaceholder)
	}
	s.ProjectsDir = resolve(workDir, s.ProjectsDir)
	if s.TemplatesDir != "" {
		s.TemplatesDir = resolve(workDir, s.TemplatesDir)
	}
	return &s, nil
}

// readFile validates the config file against the schema and loads it into v.
func readFile(v *viper.Viper, path string) error {
	result, err := ValidateFile(path)
	if err != nil {
		return err
	}
	if !result.Valid {
		return &InvalidError{Path: path, Issues: result.Issues}
	}

	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return nil
}

func resolve(workDir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(workDir, p)
}

// InvalidError reports a config file that failed schema validation.
type InvalidError struct {
	Path   string
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, issue.String())
	}
	return fmt.Sprintf("invalid config file %s: %s", e.Path, strings.Join(msgs, "; "))
}
