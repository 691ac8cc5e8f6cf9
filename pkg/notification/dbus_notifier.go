package notification

import (
	"context"

	"github.com/godbus/dbus/v5"
	"github.com/pkg/errors"
)

const (
	notificationsDestination = "org.freedesktop.Notifications"
	notificationsObjectPath  = "/org/freedesktop/Notifications"
	notificationsNotify      = "org.freedesktop.Notifications.Notify"

	appName = "break-timer"
)

// busCaller is the subset of dbus.BusObject the notifier needs.
type busCaller interface {
	CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

// DBusNotifier sends notifications straight to the freedesktop
// notification daemon. Calls are made without waiting for a reply.
type DBusNotifier struct {
	conn    *dbus.Conn
	obj     busCaller
	connect func() (*dbus.Conn, error)
}

// NewDBusNotifier creates a notifier using the user's session bus
func NewDBusNotifier() *DBusNotifier {
	return &DBusNotifier{
		connect: func() (*dbus.Conn, error) { return dbus.ConnectSessionBus() },
	}
}

func (n *DBusNotifier) object() (busCaller, error) {
	if n.obj != nil {
		return n.obj, nil
	}

	conn, err := n.connect()
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to session bus")
	}
	n.conn = conn
	n.obj = conn.Object(notificationsDestination, dbus.ObjectPath(notificationsObjectPath))
	return n.obj, nil
}

// Send implements the Notifier interface
func (n *DBusNotifier) Send(notification Notification) error {
	obj, err := n.object()
	if err != nil {
		return err
	}

	call := obj.CallWithContext(context.Background(), notificationsNotify, dbus.FlagNoReplyExpected,
		appName,
		uint32(0),
		"",
		notification.Title,
		notification.Message,
		[]string{},
		map[string]dbus.Variant{},
		int32(-1),
	)
	return errors.Wrap(call.Err, "notify")
}

// Close releases the bus connection if one was opened.
func (n *DBusNotifier) Close() error {
	if n.conn == nil {
		return nil
	}
	err := n.conn.Close()
	n.conn = nil
	n.obj = nil
	return err
}
