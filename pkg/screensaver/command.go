// Package screensaver queries and triggers the desktop screen lock.
package screensaver

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"github.com/Veraticus/break-timer/pkg/interfaces"
)

// InactiveMarker is printed by <desktop>-screensaver-command -q while the
// screen is unlocked.
const InactiveMarker = "The screensaver is inactive"

// ErrCommandFailed is returned when the lock state cannot be determined.
// Callers treat it as fatal.
var ErrCommandFailed = errors.New("screensaver command failed")

// CommandBackend drives the <desktop>-screensaver-command tool.
type CommandBackend struct {
	desktop     string
	launcher    interfaces.Launcher
	cmdExecutor func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Ensure CommandBackend implements Screensaver
var _ interfaces.Screensaver = (*CommandBackend)(nil)

// NewCommandBackend creates a backend for the given desktop environment
func NewCommandBackend(desktop string, launcher interfaces.Launcher) *CommandBackend {
	return &CommandBackend{
		desktop:     desktop,
		launcher:    launcher,
		cmdExecutor: defaultCmdExecutor,
	}
}

// defaultCmdExecutor executes a command and returns its output.
func defaultCmdExecutor(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Output()
}

// Command returns the screensaver command name for the desktop.
func (b *CommandBackend) Command() string {
	return fmt.Sprintf("%s-screensaver-command", b.desktop)
}

// IsLocked runs the status query and blocks until it exits.
func (b *CommandBackend) IsLocked(ctx context.Context) (bool, error) {
	output, err := b.cmdExecutor(ctx, b.Command(), "-q")
	if err != nil {
		return false, errors.Wrapf(ErrCommandFailed, "%s -q: %v", b.Command(), err)
	}

	return !strings.Contains(strings.TrimSpace(string(output)), InactiveMarker), nil
}

// Lock starts the lock command and returns without waiting for it.
func (b *CommandBackend) Lock() error {
	return b.launcher.Launch(b.Command(), "-l")
}
