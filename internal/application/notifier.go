package application

import "github.com/ngobridge/platform-go/internal/notify"

// Notifier is the outbound side-effect boundary. Services publish and move
// on; delivery is asynchronous and best-effort.
type Notifier interface {
	Publish(e notify.Event)
}

// noopNotifier backs services constructed without a dispatcher (tests).
type noopNotifier struct{}

func (noopNotifier) Publish(notify.Event) {}
