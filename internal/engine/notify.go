package engine

type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityDanger
)

// Notifier receives human-readable event summaries after a mutation has
// committed. The engine never depends on delivery; a no-op sink is valid.
type Notifier interface {
	Notify(title, body string, severity Severity)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(title, body string, severity Severity)

func (f NotifierFunc) Notify(title, body string, severity Severity) {
	f(title, body, severity)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string, Severity) {}

func NopNotifier() Notifier {
	return nopNotifier{}
}
