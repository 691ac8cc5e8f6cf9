package timer

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/break-timer/pkg/config"
	"github.com/Veraticus/break-timer/pkg/status"
	"github.com/Veraticus/break-timer/pkg/testutil"
)

type harness struct {
	monitor  *Monitor
	screen   *testutil.MockScreensaver
	notifier *testutil.MockNotifier
	sleeper  *testutil.MockSleeper
	log      *testutil.EventLog
	out      *bytes.Buffer
}

func newHarness(activeTime, gracePeriod int, states ...bool) *harness {
	cfg := config.DefaultConfig()
	cfg.ActiveTime = activeTime
	cfg.GracePeriod = gracePeriod

	h := &harness{
		log: testutil.NewEventLog(),
		out: &bytes.Buffer{},
	}
	h.screen = testutil.NewMockScreensaver(states...).WithLog(h.log)
	h.notifier = testutil.NewMockNotifier().WithLog(h.log)
	h.sleeper = testutil.NewMockSleeper().WithLog(h.log)

	reporter := status.NewReporter(h.out, false)
	reporter.SetDebugWriter(nil)

	h.monitor = NewMonitor(*cfg, h.screen, h.notifier, h.sleeper, reporter)
	return h
}

func (h *harness) tick(t *testing.T) {
	t.Helper()
	if err := h.monitor.Tick(context.Background()); err != nil {
		t.Fatalf("Tick() unexpected error: %v", err)
	}
}

func TestMonitor_BreakAfterThreshold(t *testing.T) {
	h := newHarness(2, 5, false, false)

	h.tick(t)
	if h.monitor.Counter() != 1 {
		t.Errorf("Counter() after first tick = %d, want 1", h.monitor.Counter())
	}
	if len(h.notifier.GetAttempts()) != 0 {
		t.Error("no notification expected before the threshold")
	}

	h.tick(t)

	attempts := h.notifier.GetAttempts()
	if len(attempts) != 1 {
		t.Fatalf("expected exactly 1 notification, got %d", len(attempts))
	}
	if !strings.Contains(attempts[0].Title, "5") {
		t.Errorf("notification %q should mention the grace period", attempts[0].Title)
	}
	if h.screen.LockCount() != 1 {
		t.Errorf("LockCount() = %d, want 1", h.screen.LockCount())
	}
	if h.monitor.Counter() != 0 {
		t.Errorf("Counter() after break = %d, want 0", h.monitor.Counter())
	}
	if got := h.sleeper.GetSleeps(); !reflect.DeepEqual(got, []time.Duration{5 * time.Second}) {
		t.Errorf("sleeps = %v, want [5s]", got)
	}

	wantEvents := []string{"query", "query", "notify", "sleep", "lock"}
	if got := h.log.Events(); !reflect.DeepEqual(got, wantEvents) {
		t.Errorf("events = %v, want %v", got, wantEvents)
	}
}

func TestMonitor_LockedObservationResets(t *testing.T) {
	h := newHarness(3, 10, false, true, false, false, false)

	wantCounters := []int{1, 0, 1, 2, 0}
	for step, want := range wantCounters {
		h.tick(t)
		if got := h.monitor.Counter(); got != want {
			t.Errorf("step %d: Counter() = %d, want %d", step+1, got, want)
		}

		wantLocks := 0
		if step == 4 {
			wantLocks = 1
		}
		if got := h.screen.LockCount(); got != wantLocks {
			t.Errorf("step %d: LockCount() = %d, want %d", step+1, got, wantLocks)
		}
	}

	if len(h.notifier.GetAttempts()) != 1 {
		t.Errorf("expected 1 notification, got %d", len(h.notifier.GetAttempts()))
	}
}

func TestMonitor_QueryFailureIsFatal(t *testing.T) {
	queryErr := errors.New("gnome-screensaver-command: not found")
	h := newHarness(1, 5, false)
	h.screen.FailQueryAt(0, queryErr)

	err := h.monitor.Tick(context.Background())
	if err == nil {
		t.Fatal("Tick() expected error")
	}
	if !errors.Is(err, queryErr) {
		t.Errorf("Tick() error = %v, want wrapped %v", err, queryErr)
	}
	if len(h.notifier.GetAttempts()) != 0 {
		t.Error("no notification expected after a failed query")
	}
	if h.screen.LockCount() != 0 {
		t.Error("no lock expected after a failed query")
	}
}

func TestMonitor_BestEffortCollaborators(t *testing.T) {
	h := newHarness(1, 0, false, false)
	h.notifier.SetError(errors.New("notify-send missing"))
	h.screen.SetLockError(errors.New("lock command missing"))

	h.tick(t)
	h.tick(t)

	if h.monitor.Counter() != 0 {
		t.Errorf("Counter() = %d, want 0", h.monitor.Counter())
	}
	if len(h.notifier.GetAttempts()) != 2 {
		t.Errorf("expected 2 notification attempts, got %d", len(h.notifier.GetAttempts()))
	}
	if h.screen.LockCount() != 2 {
		t.Errorf("LockCount() = %d, want 2", h.screen.LockCount())
	}
	if got := h.sleeper.GetSleeps(); !reflect.DeepEqual(got, []time.Duration{0, 0}) {
		t.Errorf("sleeps = %v, want zero grace periods", got)
	}
}

func TestMonitor_StatusOutput(t *testing.T) {
	h := newHarness(3, 10, false, true, false)

	h.tick(t)
	h.tick(t)
	h.tick(t)

	want := "Timer is running for 1 minutes. Next break in 2 minutes.\n" +
		"Timer is running for 1 minutes. Next break in 2 minutes.\n"
	if h.out.String() != want {
		t.Errorf("output = %q, want %q", h.out.String(), want)
	}
}

func TestMonitor_Run(t *testing.T) {
	h := newHarness(2, 5, false, false)

	err := h.monitor.Run(context.Background())
	if !errors.Is(err, testutil.ErrScriptExhausted) {
		t.Fatalf("Run() error = %v, want ErrScriptExhausted", err)
	}

	wantSleeps := []time.Duration{PollInterval, PollInterval, 5 * time.Second, PollInterval}
	if got := h.sleeper.GetSleeps(); !reflect.DeepEqual(got, wantSleeps) {
		t.Errorf("sleeps = %v, want %v", got, wantSleeps)
	}
	if h.screen.LockCount() != 1 {
		t.Errorf("LockCount() = %d, want 1", h.screen.LockCount())
	}
	if !strings.HasPrefix(h.out.String(), "Timer started. Next break in 2 minutes.\n") {
		t.Errorf("output should start with the startup line, got %q", h.out.String())
	}
}

func TestMonitor_RunCancelled(t *testing.T) {
	h := newHarness(2, 5, false, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := h.monitor.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if h.screen.QueryCount() != 0 {
		t.Errorf("QueryCount() = %d, want 0", h.screen.QueryCount())
	}
}

// TestMonitor_RandomSequences checks the counter against a reference
// model over many random observation sequences.
func TestMonitor_RandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for run := 0; run < 200; run++ {
		threshold := rng.Intn(5) + 1
		states := make([]bool, rng.Intn(40)+1)
		for i := range states {
			states[i] = rng.Intn(4) == 0
		}

		h := newHarness(threshold, 1, states...)

		expected := 0
		breaks := 0
		for i, locked := range states {
			before := h.monitor.Counter()
			h.tick(t)
			got := h.monitor.Counter()

			switch {
			case locked:
				expected = 0
			case before+1 >= threshold:
				expected = 0
				breaks++
			default:
				expected = before + 1
				if got < before {
					t.Fatalf("run %d step %d: counter decreased on unlocked poll", run, i)
				}
			}

			if got != expected {
				t.Fatalf("run %d step %d (threshold %d, states %v): Counter() = %d, want %d",
					run, i, threshold, states, got, expected)
			}
		}

		if h.screen.LockCount() != breaks {
			t.Fatalf("run %d: LockCount() = %d, want %d", run, h.screen.LockCount(), breaks)
		}
		if len(h.notifier.GetAttempts()) != breaks {
			t.Fatalf("run %d: notifications = %d, want %d", run, len(h.notifier.GetAttempts()), breaks)
		}
	}
}
