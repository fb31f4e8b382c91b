package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/horizon-engine/newproject/internal/branding"
)

func printVersion(out io.Writer, short, asJSON bool) error {
	if short {
		fmt.Fprintln(out, buildVersion)
		return nil
	}

	if asJSON {
		info := map[string]string{
			"version": buildVersion,
			"commit":  buildCommit,
			"date":    buildDate,
		}
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling version info: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), buildVersion, buildCommit, buildDate)
	return nil
}
