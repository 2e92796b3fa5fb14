// Package notify is the transient user-feedback channel: stores emit a
// human-readable notification after every user-visible mutation and the
// presentation layer decides how to surface it. Delivery is best effort
// and never affects the state change that produced it.
package notify

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

type Notification struct {
	Level   Level
	Message string
}

type Notifier interface {
	Notify(n Notification)
}

// Func adapts a plain function to the Notifier interface.
type Func func(n Notification)

func (f Func) Notify(n Notification) {
	f(n)
}
