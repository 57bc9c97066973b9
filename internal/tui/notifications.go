package tui

import (
	"context"

	"github.com/MKhiriev/go-quest-client/models"
)

// Notifications hands server reminders to the main loop. Notify never
// blocks: an unread reminder is replaced by the newer one.
type Notifications struct {
	ch chan models.Notification
}

func NewNotifications() *Notifications {
	return &Notifications{ch: make(chan models.Notification, 1)}
}

func (n *Notifications) Notify(_ context.Context, note models.Notification) error {
	for {
		select {
		case n.ch <- note:
			return nil
		default:
		}
		select {
		case <-n.ch:
		default:
		}
	}
}

// C returns the channel the main loop reads from.
func (n *Notifications) C() <-chan models.Notification {
	return n.ch
}
