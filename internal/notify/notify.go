// Package notify delivers one-shot confirmation events to the presentation
// layer. Notifications are transient: they go out on a channel and are never
// persisted.
package notify

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

type Notification struct {
	Message  string
	Severity Severity
}

// Notifier fans notifications out on a buffered channel. Emit never blocks:
// if the consumer is gone or lagging, the event is dropped — a missed toast
// must not stall a mutation.
type Notifier struct {
	events chan Notification
}

func NewNotifier(buffer int) *Notifier {
	if buffer <= 0 {
		buffer = 8
	}
	return &Notifier{events: make(chan Notification, buffer)}
}

func (n *Notifier) Emit(message string, severity Severity) {
	select {
	case n.events <- Notification{Message: message, Severity: severity}:
	default:
	}
}

// Events is the consumer side of the notifier.
func (n *Notifier) Events() <-chan Notification {
	return n.events
}
