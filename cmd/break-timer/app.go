package main

import (
	"context"
	"io"

	"github.com/Veraticus/break-timer/pkg/config"
	"github.com/Veraticus/break-timer/pkg/interfaces"
	"github.com/Veraticus/break-timer/pkg/notification"
	"github.com/Veraticus/break-timer/pkg/process"
	"github.com/Veraticus/break-timer/pkg/screensaver"
	"github.com/Veraticus/break-timer/pkg/status"
	"github.com/Veraticus/break-timer/pkg/timer"
)

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config      *config.Config
	Launcher    interfaces.Launcher
	Screensaver interfaces.Screensaver
	Notifier    notification.Notifier
	Sleeper     interfaces.Sleeper
	Reporter    interfaces.StatusReporter
}

// dependencyFactory builds the collaborators for a validated config.
// Tests swap it out to avoid touching the desktop.
type dependencyFactory func(cfg *config.Config, stdout io.Writer) (*Dependencies, error)

// NewDependencies creates all dependencies with the given configuration
func NewDependencies(cfg *config.Config, stdout io.Writer) (*Dependencies, error) {
	deps := &Dependencies{
		Config:   cfg,
		Launcher: process.NewDetachedLauncher(),
		Sleeper:  timer.ContextSleeper{},
		Reporter: status.NewReporter(stdout, cfg.Quiet),
	}

	screen, err := screensaver.New(cfg, deps.Launcher)
	if err != nil {
		return nil, err
	}
	deps.Screensaver = screen

	notifier, err := notification.New(cfg, deps.Launcher, stdout)
	if err != nil {
		return nil, err
	}
	deps.Notifier = notifier

	return deps, nil
}

// Close releases bus connections held by the D-Bus collaborators
func (d *Dependencies) Close() {
	if c, ok := d.Screensaver.(io.Closer); ok {
		_ = c.Close()
	}
	if c, ok := d.Notifier.(io.Closer); ok {
		_ = c.Close()
	}
}

// Application represents the main application
type Application struct {
	deps    *Dependencies
	monitor *timer.Monitor
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
		monitor: timer.NewMonitor(
			*deps.Config,
			deps.Screensaver,
			deps.Notifier,
			deps.Sleeper,
			deps.Reporter,
		),
	}
}

// Run polls until ctx is cancelled or the lock state can't be read
func (a *Application) Run(ctx context.Context) error {
	return a.monitor.Run(ctx)
}
