package testutil

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Veraticus/break-timer/pkg/notification"
)

// EventLog records the order in which mocks were called. Mocks sharing a
// log append "notify", "sleep", "lock", "query" and "launch" entries.
type EventLog struct {
	mu     sync.Mutex
	events []string
}

// NewEventLog creates an empty event log
func NewEventLog() *EventLog {
	return &EventLog{}
}

func (l *EventLog) add(event string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

// Events returns a copy of the recorded events
func (l *EventLog) Events() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	result := make([]string, len(l.events))
	copy(result, l.events)
	return result
}

// MockNotifier is a thread-safe mock implementation of notification.Notifier for testing
type MockNotifier struct {
	mu            sync.Mutex
	notifications []notification.Notification
	attempts      []notification.Notification // Track all send attempts
	sendErr       error
	log           *EventLog
}

// NewMockNotifier creates a new mock notifier
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{
		notifications: []notification.Notification{},
		attempts:      []notification.Notification{},
	}
}

// WithLog makes the mock record its calls in log
func (m *MockNotifier) WithLog(log *EventLog) *MockNotifier {
	m.log = log
	return m
}

// Send implements the Notifier interface
func (m *MockNotifier) Send(n notification.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.log.add("notify")

	// Always track the attempt
	m.attempts = append(m.attempts, n)

	if m.sendErr != nil {
		return m.sendErr
	}

	m.notifications = append(m.notifications, n)
	return nil
}

// GetNotifications returns a copy of successfully sent notifications
func (m *MockNotifier) GetNotifications() []notification.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]notification.Notification, len(m.notifications))
	copy(result, m.notifications)
	return result
}

// GetAttempts returns a copy of all attempted sends (including failures)
func (m *MockNotifier) GetAttempts() []notification.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]notification.Notification, len(m.attempts))
	copy(result, m.attempts)
	return result
}

// SetError sets the error to return on Send calls
func (m *MockNotifier) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sendErr = err
}

// Clear resets the mock state
func (m *MockNotifier) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = []notification.Notification{}
	m.attempts = []notification.Notification{}
	m.sendErr = nil
}

// ErrScriptExhausted is returned by MockScreensaver once every scripted
// observation has been consumed.
var ErrScriptExhausted = errors.New("mock screensaver: no more scripted states")

// MockScreensaver is a mock implementation of interfaces.Screensaver that
// replays a scripted sequence of lock states.
type MockScreensaver struct {
	mu         sync.Mutex
	states     []bool
	queryErr   error
	errAt      int
	queryCount int
	lockCount  int
	lockErr    error
	log        *EventLog
}

// NewMockScreensaver creates a mock that returns states in order, true
// meaning locked.
func NewMockScreensaver(states ...bool) *MockScreensaver {
	return &MockScreensaver{
		states: states,
		errAt:  -1,
	}
}

// WithLog makes the mock record its calls in log
func (m *MockScreensaver) WithLog(log *EventLog) *MockScreensaver {
	m.log = log
	return m
}

// FailQueryAt makes the query with the given zero-based index return err
func (m *MockScreensaver) FailQueryAt(index int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errAt = index
	m.queryErr = err
}

// SetLockError sets the error to return on Lock calls
func (m *MockScreensaver) SetLockError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lockErr = err
}

// IsLocked implements the LockState interface
func (m *MockScreensaver) IsLocked(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.log.add("query")
	index := m.queryCount
	m.queryCount++

	if index == m.errAt {
		return false, m.queryErr
	}
	if index >= len(m.states) {
		return false, ErrScriptExhausted
	}
	return m.states[index], nil
}

// Lock implements the ScreenLocker interface
func (m *MockScreensaver) Lock() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log.add("lock")
	m.lockCount++
	return m.lockErr
}

// QueryCount returns the number of lock-state queries
func (m *MockScreensaver) QueryCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queryCount
}

// LockCount returns the number of Lock calls
func (m *MockScreensaver) LockCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lockCount
}

// MockSleeper records requested sleeps and returns immediately
type MockSleeper struct {
	mu     sync.Mutex
	sleeps []time.Duration
	log    *EventLog
}

// NewMockSleeper creates a new mock sleeper
func NewMockSleeper() *MockSleeper {
	return &MockSleeper{}
}

// WithLog makes the mock record its calls in log
func (m *MockSleeper) WithLog(log *EventLog) *MockSleeper {
	m.log = log
	return m
}

// Sleep implements the Sleeper interface. It honours cancellation so
// loops driven by it still stop.
func (m *MockSleeper) Sleep(ctx context.Context, d time.Duration) error {
	m.mu.Lock()
	m.sleeps = append(m.sleeps, d)
	m.log.add("sleep")
	m.mu.Unlock()
	return ctx.Err()
}

// GetSleeps returns a copy of the requested durations
func (m *MockSleeper) GetSleeps() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]time.Duration, len(m.sleeps))
	copy(result, m.sleeps)
	return result
}

// Launch is a recorded MockLauncher call
type Launch struct {
	Name string
	Args []string
}

// MockLauncher is a mock implementation of interfaces.Launcher
type MockLauncher struct {
	mu       sync.Mutex
	launches []Launch
	err      error
	log      *EventLog
}

// NewMockLauncher creates a new mock launcher
func NewMockLauncher() *MockLauncher {
	return &MockLauncher{}
}

// WithLog makes the mock record its calls in log
func (m *MockLauncher) WithLog(log *EventLog) *MockLauncher {
	m.log = log
	return m
}

// Launch implements the Launcher interface
func (m *MockLauncher) Launch(name string, args ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log.add("launch")
	m.launches = append(m.launches, Launch{Name: name, Args: args})
	return m.err
}

// SetError sets the error to return on Launch calls
func (m *MockLauncher) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// GetLaunches returns a copy of recorded launches
func (m *MockLauncher) GetLaunches() []Launch {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]Launch, len(m.launches))
	copy(result, m.launches)
	return result
}
