package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// BootstrapLevel is used until the configured level is known.
const BootstrapLevel = "info"

// Bootstrap installs an info level production logger so failures that happen
// before the configuration is loaded still reach stderr.
func Bootstrap() error {
	return Initialize(BootstrapLevel)
}

// Initialize builds a production zap logger at the given level and installs
// it as the global logger.
func Initialize(level string) error {
	atomic, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("error while setting atomic level to zap logger: %w", err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = atomic

	log, err := zapConfig.Build()
	if err != nil {
		return fmt.Errorf("error while building zap logger: %w", err)
	}

	zap.ReplaceGlobals(log)
	return nil
}
