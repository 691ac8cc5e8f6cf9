package notification

import (
	"fmt"
	"io"
	"os"
)

// StdoutNotifier prints notifications instead of showing them on the desktop
type StdoutNotifier struct {
	writer io.Writer
}

// NewStdoutNotifier creates a new stdout notifier. A nil writer means os.Stdout.
func NewStdoutNotifier(w io.Writer) *StdoutNotifier {
	if w == nil {
		w = os.Stdout
	}
	return &StdoutNotifier{writer: w}
}

// Send prints the notification
func (n *StdoutNotifier) Send(notification Notification) error {
	if notification.Message == "" {
		_, err := fmt.Fprintf(n.writer, "[NOTIFICATION] %s\n", notification.Title)
		return err
	}
	_, err := fmt.Fprintf(n.writer, "[NOTIFICATION] %s: %s\n", notification.Title, notification.Message)
	return err
}
