// Package wire provides dependency injection for the converter.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"log/slog"
	"sync"

	"github.com/example/django2gorm/internal/adapters/catalog"
	cliadapter "github.com/example/django2gorm/internal/adapters/cli"
	"github.com/example/django2gorm/internal/adapters/filesystem"
	"github.com/example/django2gorm/internal/app"
	"github.com/example/django2gorm/internal/config"
	"github.com/example/django2gorm/internal/logging"
	"github.com/example/django2gorm/internal/ports/primary"
	"github.com/example/django2gorm/internal/scaffold"
)

var (
	cfg    *config.Config
	logger *slog.Logger

	convertService primary.ConvertService
	checkService   primary.CheckService
	once           sync.Once
)

// Configure sets the configuration and logger the services are built from.
// It has no effect once a service has been requested.
func Configure(c *config.Config, l *slog.Logger) {
	cfg = c
	logger = l
}

// Config returns the active configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	if cfg == nil {
		loaded, err := config.Load(nil)
		if err != nil {
			log.Fatalf("failed to load configuration: %v", err)
		}
		cfg = loaded
	}
	if logger == nil {
		logger = logging.NewLogger(cfg.Logging())
	}

	generator, err := scaffold.NewGenerator()
	if err != nil {
		log.Fatalf("failed to initialize generator: %v", err)
	}

	// Secondary adapters
	store := filesystem.NewArtifactStore("")
	opener := catalog.NewOpener()

	// Services (primary ports implementation)
	convertService = app.NewConvertService(store, generator, app.ConvertSettings{
		Namer:    cfg.Namer(),
		Assembly: cfg.Scaffold(),
		Strict:   cfg.Strict,
	}, logger)
	checkService = app.NewCheckService(store, opener, cfg.Namer(), logger)
}

// ConvertAdapterWithOutput returns a new ConvertAdapter writing to out.
// Each call creates a new adapter (adapters are stateless translators).
func ConvertAdapterWithOutput(out io.Writer) *cliadapter.ConvertAdapter {
	once.Do(initServices)
	return cliadapter.NewConvertAdapter(convertService, out)
}

// CheckAdapterWithOutput returns a new CheckAdapter writing to out.
func CheckAdapterWithOutput(out io.Writer) *cliadapter.CheckAdapter {
	once.Do(initServices)
	return cliadapter.NewCheckAdapter(checkService, out)
}
