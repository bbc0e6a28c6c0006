package contactform

import (
	"fmt"
	"io"
	"sync"
)

// Notifier shows the transient notification of a submission attempt.
// Loading is called once per attempt; the returned Notification is then
// resolved exactly once, replacing the loading message.
type Notifier interface {
	Loading(message string) Notification
}

// Notification is a loading notification awaiting its outcome.
type Notification interface {
	Success(message string)
	Error(message string)
}

// WriterNotifier prints notifications as lines, one per state change.
type WriterNotifier struct {
	w  io.Writer
	mu sync.Mutex
}

// NewWriterNotifier returns a Notifier printing to w.
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

// Loading implements Notifier.
func (n *WriterNotifier) Loading(message string) Notification {
	n.print("…", message)
	return writerNotification{n: n}
}

func (n *WriterNotifier) print(prefix, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintf(n.w, "%s %s\n", prefix, message)
}

type writerNotification struct {
	n *WriterNotifier
}

func (wn writerNotification) Success(message string) { wn.n.print("✓", message) }
func (wn writerNotification) Error(message string)   { wn.n.print("✗", message) }
