package review

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var partialSuccessTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "merchant_admin",
	Name:      "partial_success_total",
	Help:      "Products created on the gateway whose follow-up price update failed.",
})

// Entry records one partial success of the create workflow: the product
// exists on the gateway but a follow-up step did not land. There is no
// compensating transaction, so the product is queued for manual review
// instead of silently losing the state.
type Entry struct {
	ProductID string
	VariantID string
	Title     string
	Reason    string
	At        time.Time
}

// Journal is the in-memory review queue. The panel owns no persistence;
// the journal exists to make partial success visible to an operator, and
// its contents are also written to the log at error level.
type Journal struct {
	logger *slog.Logger

	mu      sync.Mutex
	entries []Entry
}

func NewJournal(logger *slog.Logger) *Journal {
	return &Journal{
		logger: logger.With(slog.String("service", "review")),
	}
}

// Record queues a partial success for manual review.
func (j *Journal) Record(ctx context.Context, entry Entry) {
	if entry.At.IsZero() {
		entry.At = time.Now()
	}

	j.mu.Lock()
	j.entries = append(j.entries, entry)
	j.mu.Unlock()

	partialSuccessTotal.Inc()
	j.logger.ErrorContext(ctx, "product queued for manual review",
		slog.String("product_id", entry.ProductID),
		slog.String("variant_id", entry.VariantID),
		slog.String("reason", entry.Reason),
	)
}

// List returns a snapshot of the queued entries, newest first.
func (j *Journal) List() []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]Entry, len(j.entries))
	for i, e := range j.entries {
		out[len(j.entries)-1-i] = e
	}
	return out
}
