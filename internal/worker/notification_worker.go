package worker

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"shiftbook/internal/amqp"
	"shiftbook/internal/log"
)

// NotificationWorker logs notifications consumed from the queue and keeps a
// running count per kind.
type NotificationWorker struct {
	logger *log.Logger

	mu     sync.Mutex
	counts map[string]int
	last   time.Time
}

func NewNotificationWorker(logger *log.Logger) *NotificationWorker {
	if logger == nil {
		logger = log.Discard()
	}
	return &NotificationWorker{
		logger: logger.WithComponent(log.ComponentNotify),
		counts: make(map[string]int),
	}
}

// HandleNotification processes a single message. Messages without a kind
// are rejected so they are not requeued forever.
func (w *NotificationWorker) HandleNotification(msg *amqp.NotificationMessage) error {
	if msg == nil || msg.Kind == "" {
		return errors.New("notification without kind")
	}

	w.mu.Lock()
	w.counts[msg.Kind]++
	w.last = msg.Timestamp
	w.mu.Unlock()

	args := []any{
		"id", msg.ID,
		log.FieldKind, msg.Kind,
		log.FieldSeverity, msg.Severity,
		"sent_at", msg.Timestamp,
	}
	if msg.Severity == "error" {
		w.logger.Warn(msg.Message, args...)
	} else {
		w.logger.Info(msg.Message, args...)
	}
	return nil
}

// KindCount is the number of messages seen for one kind.
type KindCount struct {
	Kind  string
	Count int
}

// Counts returns the per-kind totals ordered by kind.
func (w *NotificationWorker) Counts() []KindCount {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]KindCount, 0, len(w.counts))
	for k, n := range w.counts {
		out = append(out, KindCount{Kind: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

// LogCounts writes the per-kind totals to the log.
func (w *NotificationWorker) LogCounts(ctx context.Context) {
	counts := w.Counts()
	if len(counts) == 0 {
		return
	}
	args := make([]any, 0, 2*len(counts)+2)
	for _, c := range counts {
		args = append(args, c.Kind, c.Count)
	}
	w.mu.Lock()
	args = append(args, "last_sent_at", w.last)
	w.mu.Unlock()
	w.logger.InfoContext(ctx, "Notification totals", args...)
}

// Run logs the totals every interval until ctx is done.
func (w *NotificationWorker) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.LogCounts(context.Background())
			return
		case <-ticker.C:
			w.LogCounts(ctx)
		}
	}
}
