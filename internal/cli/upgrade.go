package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seedshard/seedshard/internal/output"
	versionpkg "github.com/seedshard/seedshard/internal/version"
)

const (
	devVersionString = "dev"
	upgradeOwner     = "seedshard"
	upgradeRepo      = "seedshard"
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Check for a newer released version",
	Long: `Upgrade checks the latest GitHub release against the running
build and reports whether a newer version is available.

seedshard never downloads or replaces its own binary: a tool that exists
to protect secret material should not also be an auto-update vector.
Install the new release through your usual package manager or
'go install'.

Example:
  seedshard upgrade`,
	RunE: runUpgrade,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(upgradeCmd)
}

func runUpgrade(cmd *cobra.Command, _ []string) error {
	current := buildVersion
	if current == "" {
		current = devVersionString
	}

	release, err := versionpkg.GetLatestRelease(cmd.Context(), upgradeOwner, upgradeRepo)
	if err != nil {
		return fmt.Errorf("checking for updates: %w", err)
	}
	latest := strings.TrimPrefix(release.TagName, "v")

	w := cmd.OutOrStdout()
	format := output.FormatText
	if cmdCtx != nil {
		format = cmdCtx.Fmt.Format()
	}

	isNewer := versionpkg.IsNewerVersion(current, latest)

	if format == output.FormatJSON {
		return writeJSON(w, struct {
			Current string `json:"current"`
			Latest  string `json:"latest"`
			IsNewer bool   `json:"is_newer"`
		}{Current: current, Latest: latest, IsNewer: isNewer})
	}

	fmt.Fprintf(w, "Current version: %s\n", current)
	fmt.Fprintf(w, "Latest version:  %s\n", latest)
	if isNewer {
		fmt.Fprintln(w, "A newer version is available.")
	} else {
		fmt.Fprintln(w, "You are on the latest version.")
	}
	return nil
}
