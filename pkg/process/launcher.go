// Package process starts external helper commands.
package process

import (
	"fmt"
	"os/exec"

	"github.com/Veraticus/break-timer/pkg/interfaces"
)

// DetachedLauncher starts commands and never observes their completion.
//
// Notification and lock helpers are fire-and-forget: the caller gets an
// error only if the binary could not be started at all, and the exit
// status is discarded. A background Wait reaps the child so it does not
// linger as a zombie.
type DetachedLauncher struct {
	// startFunc is swapped in tests
	startFunc func(cmd *exec.Cmd) error
}

// Ensure DetachedLauncher implements Launcher
var _ interfaces.Launcher = (*DetachedLauncher)(nil)

// NewDetachedLauncher creates a launcher that starts real processes
func NewDetachedLauncher() *DetachedLauncher {
	return &DetachedLauncher{
		startFunc: defaultStart,
	}
}

func defaultStart(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

// Launch starts name with args and returns immediately
func (l *DetachedLauncher) Launch(name string, args ...string) error {
	cmd := exec.Command(name, args...)

	if err := l.startFunc(cmd); err != nil {
		return fmt.Errorf("failed to launch %s: %w", name, err)
	}

	return nil
}
