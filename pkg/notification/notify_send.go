package notification

import (
	"github.com/Veraticus/break-timer/pkg/interfaces"
)

// NotifySendNotifier shows desktop notifications through notify-send.
// The command is launched detached; whether it actually displayed
// anything is never checked.
type NotifySendNotifier struct {
	launcher interfaces.Launcher
	command  string
}

// NewNotifySendNotifier creates a notifier that launches notify-send
func NewNotifySendNotifier(launcher interfaces.Launcher) *NotifySendNotifier {
	return &NotifySendNotifier{
		launcher: launcher,
		command:  "notify-send",
	}
}

// Send launches notify-send with the title and, if present, the message body
func (n *NotifySendNotifier) Send(notification Notification) error {
	args := []string{notification.Title}
	if notification.Message != "" {
		args = append(args, notification.Message)
	}
	return n.launcher.Launch(n.command, args...)
}
