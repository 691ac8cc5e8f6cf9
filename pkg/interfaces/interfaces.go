// Package interfaces defines the core interfaces used throughout the application.
package interfaces

import (
	"context"
	"time"
)

// LockState reports whether the screen is currently locked.
type LockState interface {
	IsLocked(ctx context.Context) (bool, error)
}

// ScreenLocker locks the screen. Implementations do not wait for the
// lock to take effect.
type ScreenLocker interface {
	Lock() error
}

// Screensaver is a desktop backend that can both query and lock.
type Screensaver interface {
	LockState
	ScreenLocker
}

// Launcher starts external commands without waiting for them.
type Launcher interface {
	Launch(name string, args ...string) error
}

// Sleeper suspends the caller for a fixed duration.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// StatusReporter reports timer progress to the user.
type StatusReporter interface {
	ReportStarted(activeTime int)
	ReportRunning(elapsed, activeTime int)
	Debugf(format string, args ...interface{})
}
