package screensaver

import (
	"fmt"

	"github.com/Veraticus/break-timer/pkg/config"
	"github.com/Veraticus/break-timer/pkg/interfaces"
)

// New creates the backend selected by cfg.Backend.
func New(cfg *config.Config, launcher interfaces.Launcher) (interfaces.Screensaver, error) {
	switch cfg.Backend {
	case config.BackendCommand, "":
		return NewCommandBackend(cfg.Desktop, launcher), nil
	case config.BackendDBus:
		return NewDBusBackend(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
