package notify

import (
	"context"
	"log"

	"github.com/ngobridge/platform-go/internal/domain/notification"
	"github.com/ngobridge/platform-go/internal/mailer"
	"github.com/ngobridge/platform-go/internal/repository"
)

// Event is one notification fan-out: an in-app notification for UserID plus
// a best-effort email when Email is set.
type Event struct {
	UserID  uint
	Message string
	Link    string

	Email   string
	Subject string
	Text    string
	HTML    string
}

// Pusher delivers a created notification to live listeners.
type Pusher interface {
	Push(userID uint, payload interface{})
}

// Dispatcher is the outbound side-effect channel. Services publish events
// and return immediately; a background worker persists the in-app
// notification, pushes it to open sockets, then attempts email delivery.
// Every failure is logged and swallowed: side effects never fail or roll
// back the write that triggered them.
type Dispatcher struct {
	events        chan Event
	notifications repository.NotificationRepo
	mailer        mailer.Mailer
	pusher        Pusher
}

func NewDispatcher(notifications repository.NotificationRepo, m mailer.Mailer, pusher Pusher, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 64
	}
	return &Dispatcher{
		events:        make(chan Event, buffer),
		notifications: notifications,
		mailer:        m,
		pusher:        pusher,
	}
}

// Start runs the delivery loop until ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case e := <-d.events:
				d.deliver(ctx, e)
			}
		}
	}()
}

// Publish hands an event to the worker without blocking. When the buffer is
// full the event is dropped and logged; in-app notifications are advisory,
// not transactional.
func (d *Dispatcher) Publish(e Event) {
	select {
	case d.events <- e:
	default:
		log.Printf("notification buffer full, dropping event for user %d", e.UserID)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, e Event) {
	n := &notification.Notification{
		UserID:  e.UserID,
		Message: e.Message,
		Link:    e.Link,
	}
	if err := d.notifications.Create(n); err != nil {
		log.Printf("failed to store notification for user %d: %v", e.UserID, err)
	} else if d.pusher != nil {
		d.pusher.Push(e.UserID, n)
	}

	if e.Email == "" || d.mailer == nil {
		return
	}
	if err := d.mailer.Send(ctx, e.Email, e.Subject, e.Text, e.HTML); err != nil {
		log.Printf("failed to send email to %s: %v", e.Email, err)
	}
}
