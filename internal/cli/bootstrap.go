// Package cli provides CLI commands for the converter.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/django2gorm/internal/config"
	"github.com/example/django2gorm/internal/logging"
	"github.com/example/django2gorm/internal/wire"
)

// Bootstrap resolves configuration for the invoked command and hands it to
// the wiring layer. It runs as the root PersistentPreRunE.
func Bootstrap(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.Logging())
	logger.Debug("configuration loaded",
		"driver", cfg.Driver,
		"package", cfg.Package,
		"strict", cfg.Strict,
	)

	wire.Configure(cfg, logger)
	return nil
}
