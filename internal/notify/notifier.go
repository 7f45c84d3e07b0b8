// Package notify delivers short status messages outside the terminal.
package notify

import "context"

// Notification represents a notification message.
type Notification struct {
	Subject string
	Body    string
}

// Notifier is the interface for sending notifications.
type Notifier interface {
	// Send sends a notification.
	Send(ctx context.Context, notification Notification) error
}

// Multi sends to every notifier and returns the first error.
type Multi []Notifier

func (m Multi) Send(ctx context.Context, n Notification) error {
	var first error
	for _, notifier := range m {
		if err := notifier.Send(ctx, n); err != nil && first == nil {
			first = err
		}
	}
	return first
}
