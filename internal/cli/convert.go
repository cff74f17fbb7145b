package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/django2gorm/internal/ports/primary"
	"github.com/example/django2gorm/internal/wire"
)

// RunConvert is the root command: convert <input|DEMO> [output].
// Without arguments it prints usage.
func RunConvert(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	ctx := context.Background()
	cfg := wire.Config()
	inputPath, inputLines := resolveInput(args[0])

	_, err := wire.ConvertAdapterWithOutput(cmd.OutOrStdout()).Convert(ctx, primary.ConvertRequest{
		InputPath:          inputPath,
		InputLines:         inputLines,
		OutputPath:         resolveOutput(args),
		IncludeScaffolding: cfg.Scaffolding,
		AutoAddUser:        cfg.AddUser,
		AutoAddGroup:       cfg.AddGroup,
	})
	return err
}
