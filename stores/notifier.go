package stores

import "log"

// Notifier receives the transient success/failure notifications every
// store mutation emits. The dashboard frontend renders these; the
// default implementation just logs them.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type LogNotifier struct{}

func (LogNotifier) Success(message string) {
	log.Println("OK:", message)
}

func (LogNotifier) Error(message string) {
	log.Println("ERROR:", message)
}
