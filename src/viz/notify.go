package viz

import "time"

// Severity classifies a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// NotifyDuration is how long a notification stays visible before it
// auto-dismisses. Concurrent notifications are independent; they are not
// deduplicated or queued.
const NotifyDuration = 3 * time.Second

// Notifier shows transient, non-blocking user feedback. Implementations must
// not fail; a notifier that cannot display simply drops the message.
type Notifier interface {
	Notify(message string, severity Severity)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(string, Severity) {}

// LogNotifier routes notifications to the package logger. Used by headless
// runs where no UI exists.
type LogNotifier struct{}

func (LogNotifier) Notify(message string, severity Severity) {
	switch severity {
	case SeverityError:
		Errorf("%s", message)
	default:
		Infof("%s", message)
	}
}
