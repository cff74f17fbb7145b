package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/django2gorm/internal/ports/primary"
	"github.com/example/django2gorm/internal/wire"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input|DEMO>",
	Short: "Print the parsed models as YAML without writing files",
	Long: `Convert the input and print every model, field entry, table name and
diagnostic as YAML. Nothing is written.

Examples:
  django2gorm inspect models.py
  django2gorm inspect DEMO --pluralize inflect`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath, inputLines := resolveInput(args[0])

		_, err := wire.ConvertAdapterWithOutput(cmd.OutOrStdout()).Inspect(context.Background(), primary.InspectRequest{
			InputPath:  inputPath,
			InputLines: inputLines,
		})
		return err
	},
}

// InspectCmd returns the inspect command
func InspectCmd() *cobra.Command {
	return inspectCmd
}
