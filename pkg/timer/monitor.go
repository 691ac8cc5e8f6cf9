// Package timer implements the break timer polling loop.
//
// Every PollInterval the Monitor asks the screensaver whether the screen
// is locked. Consecutive unlocked polls are counted; a locked poll resets
// the count. When the count reaches the configured active time the
// Monitor shows a notification, waits for the grace period, locks the
// screen and starts counting from zero again.
//
// Because the screen is sampled once a minute, the real active time
// before a break lies between (ActiveTime-1) and ActiveTime minutes.
package timer

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/break-timer/pkg/config"
	"github.com/Veraticus/break-timer/pkg/interfaces"
	"github.com/Veraticus/break-timer/pkg/notification"
)

// PollInterval is the fixed time between lock-state queries.
const PollInterval = 60 * time.Second

// Monitor owns the idle counter. It is not safe for concurrent use; the
// loop is the only caller.
type Monitor struct {
	cfg      config.Config
	screen   interfaces.Screensaver
	notifier notification.Notifier
	sleeper  interfaces.Sleeper
	reporter interfaces.StatusReporter

	counter int
}

// NewMonitor creates a monitor. cfg is copied and never changes afterwards.
func NewMonitor(
	cfg config.Config,
	screen interfaces.Screensaver,
	notifier notification.Notifier,
	sleeper interfaces.Sleeper,
	reporter interfaces.StatusReporter,
) *Monitor {
	return &Monitor{
		cfg:      cfg,
		screen:   screen,
		notifier: notifier,
		sleeper:  sleeper,
		reporter: reporter,
	}
}

// Counter returns the number of consecutive unlocked polls since the last
// reset.
func (m *Monitor) Counter() int {
	return m.counter
}

// Run reports startup and polls until ctx is cancelled or a lock-state
// query fails. It never returns nil.
func (m *Monitor) Run(ctx context.Context) error {
	m.reporter.ReportStarted(m.cfg.ActiveTime)

	for {
		if err := m.sleeper.Sleep(ctx, PollInterval); err != nil {
			return err
		}

		if err := m.Tick(ctx); err != nil {
			return err
		}
	}
}

// Tick performs a single poll. The only error it returns besides context
// cancellation is a failed lock-state query, which is fatal.
func (m *Monitor) Tick(ctx context.Context) error {
	locked, err := m.screen.IsLocked(ctx)
	if err != nil {
		return fmt.Errorf("failed to query lock state: %w", err)
	}

	if locked {
		if m.counter > 0 {
			m.reporter.Debugf("screen locked, resetting counter from %d", m.counter)
		}
		m.counter = 0
	} else {
		m.counter++
		m.reporter.ReportRunning(m.counter, m.cfg.ActiveTime)
	}

	if m.counter >= m.cfg.ActiveTime {
		return m.takeBreak(ctx)
	}

	return nil
}

// takeBreak runs notify, wait, lock. Notify and lock are best effort and
// their failures are only logged at debug level.
func (m *Monitor) takeBreak(ctx context.Context) error {
	m.counter = 0

	m.reporter.Debugf("active time of %d minutes reached, locking in %d seconds",
		m.cfg.ActiveTime, m.cfg.GracePeriod)

	if err := m.notifier.Send(notification.BreakNotification(m.cfg.GracePeriod)); err != nil {
		m.reporter.Debugf("notification failed: %v", err)
	}

	if err := m.sleeper.Sleep(ctx, time.Duration(m.cfg.GracePeriod)*time.Second); err != nil {
		return err
	}

	if err := m.screen.Lock(); err != nil {
		m.reporter.Debugf("lock failed: %v", err)
	}

	return nil
}
