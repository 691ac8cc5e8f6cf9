package screensaver

import (
	"context"

	"github.com/godbus/dbus/v5"
	"github.com/pkg/errors"

	"github.com/Veraticus/break-timer/pkg/interfaces"
)

const (
	screenSaverDestination = "org.freedesktop.ScreenSaver"
	screenSaverObjectPath  = "/org/freedesktop/ScreenSaver"
	screenSaverGetActive   = "org.freedesktop.ScreenSaver.GetActive"
	screenSaverLock        = "org.freedesktop.ScreenSaver.Lock"
)

// busCaller is the subset of dbus.BusObject the backend needs.
type busCaller interface {
	CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

// DBusBackend talks to org.freedesktop.ScreenSaver on the session bus.
// The connection is opened on first use.
type DBusBackend struct {
	conn    *dbus.Conn
	obj     busCaller
	connect func() (*dbus.Conn, error)
}

// Ensure DBusBackend implements Screensaver
var _ interfaces.Screensaver = (*DBusBackend)(nil)

// NewDBusBackend creates a backend using the user's session bus
func NewDBusBackend() *DBusBackend {
	return &DBusBackend{
		connect: func() (*dbus.Conn, error) { return dbus.ConnectSessionBus() },
	}
}

func (b *DBusBackend) object() (busCaller, error) {
	if b.obj != nil {
		return b.obj, nil
	}

	conn, err := b.connect()
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to session bus")
	}
	b.conn = conn
	b.obj = conn.Object(screenSaverDestination, dbus.ObjectPath(screenSaverObjectPath))
	return b.obj, nil
}

// IsLocked calls GetActive and reports whether the screensaver is active.
func (b *DBusBackend) IsLocked(ctx context.Context) (bool, error) {
	obj, err := b.object()
	if err != nil {
		return false, errors.Wrapf(ErrCommandFailed, "%v", err)
	}

	var active bool
	if err := obj.CallWithContext(ctx, screenSaverGetActive, 0).Store(&active); err != nil {
		return false, errors.Wrapf(ErrCommandFailed, "%s: %v", screenSaverGetActive, err)
	}

	return active, nil
}

// Lock asks the screensaver to lock without waiting for a reply.
func (b *DBusBackend) Lock() error {
	obj, err := b.object()
	if err != nil {
		return err
	}

	return obj.CallWithContext(context.Background(), screenSaverLock, dbus.FlagNoReplyExpected).Err
}

// Close releases the bus connection if one was opened.
func (b *DBusBackend) Close() error {
	if b.conn == nil {
		return nil
	}
	err := b.conn.Close()
	b.conn = nil
	b.obj = nil
	return err
}
