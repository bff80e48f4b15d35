package focus

import "focusflow/internal/models"

// CompletionMessage is shown when a session runs out.
const CompletionMessage = "Focus session complete! Take a break."

// Notifier receives the "session complete" signal. Implementations must
// not block the UI thread.
type Notifier interface {
	SessionComplete(models.CompletedSession)
}

type NotifierFunc func(models.CompletedSession)

func (f NotifierFunc) SessionComplete(s models.CompletedSession) {
	f(s)
}

// MultiNotifier fans the signal out in order.
type MultiNotifier []Notifier

func (m MultiNotifier) SessionComplete(s models.CompletedSession) {
	for _, n := range m {
		if n != nil {
			n.SessionComplete(s)
		}
	}
}
