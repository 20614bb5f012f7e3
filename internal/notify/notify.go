// Package notify delivers user-facing messages raised by the document store.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"shiftbook/internal/amqp"
	"shiftbook/internal/log"
)

type Severity string

const (
	Success Severity = "success"
	Info    Severity = "info"
	Error   Severity = "error"
)

type Kind string

const (
	KindLoadCorrupt     Kind = "load_corrupt"
	KindMigrated        Kind = "migrated"
	KindSaveFailed      Kind = "save_failed"
	KindImportSucceeded Kind = "import_succeeded"
	KindImportFailed    Kind = "import_failed"
	KindInvalidImport   Kind = "invalid_import"
	KindCleared         Kind = "cleared"
)

type Notification struct {
	Kind     Kind
	Severity Severity
	Message  string
}

func (n Notification) String() string {
	return fmt.Sprintf("[%s] %s", n.Severity, n.Message)
}

// Notifier receives notifications. Implementations must not block for long
// and never fail the operation that raised the notification.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Func adapts a function to Notifier.
type Func func(ctx context.Context, n Notification)

func (f Func) Notify(ctx context.Context, n Notification) { f(ctx, n) }

// Discard drops every notification.
var Discard Notifier = Func(func(context.Context, Notification) {})

// Multi fans a notification out to every notifier in order.
func Multi(notifiers ...Notifier) Notifier {
	return Func(func(ctx context.Context, n Notification) {
		for _, nt := range notifiers {
			if nt != nil {
				nt.Notify(ctx, n)
			}
		}
	})
}

// Writer prints notifications one per line.
func Writer(w io.Writer) Notifier {
	var mu sync.Mutex
	return Func(func(_ context.Context, n Notification) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(w, n.String())
	})
}

// Log records notifications in the structured log.
func Log(logger *log.Logger) Notifier {
	logger = logger.WithComponent(log.ComponentNotify)
	return Func(func(ctx context.Context, n Notification) {
		args := []any{log.FieldKind, string(n.Kind), log.FieldSeverity, string(n.Severity)}
		if n.Severity == Error {
			logger.WarnContext(ctx, n.Message, args...)
			return
		}
		logger.InfoContext(ctx, n.Message, args...)
	})
}

// Publisher is the subset of the AMQP client used for fan-out.
type Publisher interface {
	PublishNotification(ctx context.Context, msg *amqp.NotificationMessage) error
}

// AMQP publishes every notification. Publish failures are logged and
// swallowed.
func AMQP(pub Publisher, logger *log.Logger) Notifier {
	logger = logger.WithComponent(log.ComponentAMQP)
	return Func(func(ctx context.Context, n Notification) {
		msg := amqp.NewNotificationMessage(string(n.Kind), string(n.Severity), n.Message)
		if err := pub.PublishNotification(ctx, msg); err != nil {
			logger.WarnContext(ctx, "Failed to publish notification",
				log.FieldKind, string(n.Kind),
				log.FieldOperation, log.OpPublish,
				log.FieldError, err)
		}
	})
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mu   sync.Mutex
	list []Notification
}

func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, n)
}

// All returns the notifications received so far.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.list...)
}

// Kinds returns the kinds received so far, in order.
func (r *Recorder) Kinds() []Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Kind, len(r.list))
	for i, n := range r.list {
		out[i] = n.Kind
	}
	return out
}

// Reset forgets everything recorded.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = nil
}
