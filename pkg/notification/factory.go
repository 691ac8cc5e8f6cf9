package notification

import (
	"fmt"
	"io"

	"github.com/Veraticus/break-timer/pkg/config"
	"github.com/Veraticus/break-timer/pkg/interfaces"
)

// New creates the notifier selected by cfg.Notifier. w is only used by
// the stdout notifier.
func New(cfg *config.Config, launcher interfaces.Launcher, w io.Writer) (Notifier, error) {
	switch cfg.Notifier {
	case config.NotifierNotifySend, "":
		return NewNotifySendNotifier(launcher), nil
	case config.NotifierDBus:
		return NewDBusNotifier(), nil
	case config.NotifierStdout:
		return NewStdoutNotifier(w), nil
	default:
		return nil, fmt.Errorf("unknown notifier %q", cfg.Notifier)
	}
}
