// Package memory holds process-local adapters. The activity backlog lives
// here: entries that failed to persist after an order commit wait in memory
// until the flush job retries them.
package memory

import (
	"sync"

	"localmarket/internal/core/domain/model/activity"
)

// ActivityBacklog is a concurrency-safe FIFO buffer of activity entries.
type ActivityBacklog struct {
	mu      sync.Mutex
	entries []*activity.Entry
}

// NewActivityBacklog creates an empty backlog.
func NewActivityBacklog() *ActivityBacklog {
	return &ActivityBacklog{}
}

// Enqueue adds entries to the tail of the backlog.
func (b *ActivityBacklog) Enqueue(entries ...*activity.Entry) {
	if len(entries) == 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, entries...)
}

// Drain removes and returns all buffered entries in arrival order.
func (b *ActivityBacklog) Drain() []*activity.Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	drained := b.entries
	b.entries = nil
	return drained
}

// Requeue puts entries back at the head, ahead of anything enqueued since.
func (b *ActivityBacklog) Requeue(entries []*activity.Entry) {
	if len(entries) == 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	requeued := make([]*activity.Entry, 0, len(entries)+len(b.entries))
	requeued = append(requeued, entries...)
	requeued = append(requeued, b.entries...)
	b.entries = requeued
}

// Len reports the number of buffered entries.
func (b *ActivityBacklog) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}
