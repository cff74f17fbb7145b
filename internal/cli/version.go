package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/django2gorm/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}

// VersionCmd returns the version command
func VersionCmd() *cobra.Command {
	return versionCmd
}
