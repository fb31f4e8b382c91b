package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/horizon-engine/newproject/internal/branding"
	"github.com/horizon-engine/newproject/internal/config"
	"github.com/horizon-engine/newproject/internal/scaffold"
	"github.com/horizon-engine/newproject/internal/toolchain"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// ErrUsage marks a wrong command line: bad argument count or unknown flag.
var ErrUsage = errors.New("usage error")

// reportedError wraps an error whose message the command already printed.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

// app holds flags and state for one invocation.
type app struct {
	workDir    string
	configFile string
	settings   *config.Settings

	showList    bool
	showDoctor  bool
	showVersion bool
	jsonOutput  bool
	short       bool
	cmakeBin    string
}

func newRootCmd(a *app) *cobra.Command {
	name := branding.CLIName()
	cmd := &cobra.Command{
		Use:   name + " <name>",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates projects/<name>/ with a CMakeLists.txt rendered for
<name> and a main.cpp entry point, then registers the new directory with
add_subdirectory(<name>) in projects/CMakeLists.txt.

Any single argument is a project name. For a name starting with "-", put
"--" before it: '` + name + ` -- -x'.

--list, --doctor and --version are read-only and take no name.`,
		Args:          a.validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// version must work even with a broken config file.
			if a.showVersion {
				return printVersion(cmd.OutOrStdout(), a.short, a.jsonOutput)
			}
			if err := a.loadSettings(cmd); err != nil {
				return err
			}
			switch {
			case a.showList:
				return a.runList(cmd.OutOrStdout())
			case a.showDoctor:
				return a.runDoctor(cmd)
			}
			return a.runScaffold(cmd, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVar(&a.configFile, "config", "", "Config file (default "+branding.ConfigFile()+" in the working directory)")
	f.String(config.FlagName(config.KeyProjectsDir), "", settingUsage("Projects root directory", config.KeyProjectsDir, config.DefaultProjectsDir))
	f.String(config.FlagName(config.KeyBuildFile), "", settingUsage("Build file name", config.KeyBuildFile, config.DefaultBuildFile))
	f.String(config.FlagName(config.KeyEntryFile), "", settingUsage("Entry point file name", config.KeyEntryFile, config.DefaultEntryFile))
	f.String(config.FlagName(config.KeyPlaceholder), "", settingUsage("Placeholder token in the build template", config.KeyPlaceholder, config.DefaultPlaceholder))
	f.String(config.FlagName(config.KeyTemplatesDir), "", settingUsage("Directory with "+scaffold.BuildTemplateName+"/"+scaffold.EntryTemplateName+" overrides", config.KeyTemplatesDir, ""))

	f.BoolVar(&a.showList, "list", false, "List subprojects and their registration state")
	f.BoolVar(&a.showDoctor, "doctor", false, "Run read-only health checks on the projects tree")
	f.BoolVar(&a.showVersion, "version", false, "Print version information")
	f.BoolVar(&a.jsonOutput, "json", false, "JSON output for --list and --version")
	f.BoolVar(&a.short, "short", false, "Print the version number only (with --version)")
	f.StringVar(&a.cmakeBin, "cmake", toolchain.DefaultCMake, "cmake binary checked by --doctor")

	// Otherwise cobra adds a completion command when the first argument is
	// "completion".
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})
	return cmd
}

// settingUsage describes a config-backed flag with its default and env override.
func settingUsage(desc, key, def string) string {
	if def != "" {
		desc += fmt.Sprintf(" (default %q)", def)
	}
	return desc + ", env " + branding.EnvVar(key)
}

// validateArgs requires one project name, or none with a single helper flag.
func (a *app) validateArgs(cmd *cobra.Command, args []string) error {
	helpers := 0
	for _, on := range []bool{a.showList, a.showDoctor, a.showVersion} {
		if on {
			helpers++
		}
	}

	switch {
	case helpers > 1:
		return fmt.Errorf("%w: --list, --doctor and --version are mutually exclusive", ErrUsage)
	case helpers == 1 && len(args) != 0:
		return fmt.Errorf("%w: --list, --doctor and --version take no project name", ErrUsage)
	case helpers == 0 && len(args) != 1:
		return fmt.Errorf("%w: %s accepts 1 arg(s), received %d", ErrUsage, cmd.CommandPath(), len(args))
	}
	return nil
}

func (a *app) loadSettings(cmd *cobra.Command) error {
	s, err := config.Load(a.workDir, a.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.settings = s
	return nil
}

func (a *app) runScaffold(cmd *cobra.Command, name string) error {
	s := a.settings
	out := cmd.OutOrStdout()

	templates, err := scaffold.LoadTemplates(s.TemplatesDir)
	if err != nil {
		return err
	}

	result, err := scaffold.Create(scaffold.Options{
		Name:        name,
		ProjectsDir: s.ProjectsDir,
		BuildFile:   s.BuildFile,
		EntryFile:   s.EntryFile,
		Placeholder: s.Placeholder,
		Templates:   templates,
		Out:         out,
	})
	if errors.Is(err, scaffold.ErrAlreadyExists) {
		fmt.Fprintf(out, "%s project already exist\n", name)
		return reportedError{err}
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nProject %s created in %s\n", name, result.Dir)
	return nil
}

func printUsage(w io.Writer) {
	name := branding.CLIName()
	fmt.Fprintf(w, "Usage: %s <name>\n", name)
	fmt.Fprintf(w, "       %s -- <name>    (name starting with \"-\")\n", name)
	fmt.Fprintf(w, "       %s --list | --doctor | --version\n", name)
}

// run executes the command for args and prints any failure. Usage errors
// print the usage lines on stdout; other errors go to stderr.
func run(args []string, workDir string, stdout, stderr io.Writer) error {
	a := &app{workDir: workDir}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	var reported reportedError
	switch {
	case err == nil:
	case errors.As(err, &reported):
	case errors.Is(err, ErrUsage):
		printUsage(stdout)
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return err
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: getting current directory: %v\n", err)
		return err
	}
	return run(os.Args[1:], cwd, os.Stdout, os.Stderr)
}
