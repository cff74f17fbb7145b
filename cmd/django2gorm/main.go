package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/django2gorm/internal/cli"
	"github.com/example/django2gorm/internal/config"
	"github.com/example/django2gorm/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "django2gorm <input-path|DEMO> [output-path]",
		Short:   "Convert Django models.py files into GORM models",
		Version: version.String(),
		Long: `django2gorm reads a Django models.py file and writes Go struct definitions
with GORM tags, one struct per model, plus a TableName accessor for each.

The output defaults to gorm_models.go and is never overwritten. Lines that
cannot be converted are kept as comments and listed in <output>.errors.
Use DEMO as the input to convert a built-in example.`,
		Args:              cobra.MaximumNArgs(2),
		PersistentPreRunE: cli.Bootstrap,
		RunE:              cli.RunConvert,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	config.RegisterFlags(rootCmd.PersistentFlags())

	// Add subcommands
	rootCmd.AddCommand(cli.InspectCmd())
	rootCmd.AddCommand(cli.CheckCmd())
	rootCmd.AddCommand(cli.VersionCmd())

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "!! %v\n", err)
		os.Exit(1)
	}
}
