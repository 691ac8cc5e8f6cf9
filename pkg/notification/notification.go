// Package notification provides notification functionality.
package notification

import (
	"fmt"
	"time"
)

// Notification represents a notification to be sent.
type Notification struct {
	Title   string
	Message string
	Time    time.Time
}

// Notifier sends notifications.
type Notifier interface {
	Send(notification Notification) error
}

// BreakNotification builds the notification shown before the screen is
// locked. gracePeriod is in seconds.
func BreakNotification(gracePeriod int) Notification {
	return Notification{
		Title: fmt.Sprintf("It's time to take a break! Screen will be locked in %d seconds.", gracePeriod),
		Time:  time.Now(),
	}
}
