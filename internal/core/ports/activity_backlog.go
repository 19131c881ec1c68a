package ports

import (
	"localmarket/internal/core/domain/model/activity"
)

// ActivityBacklog buffers activity entries whose persistence failed after the
// order transaction had already committed. A background job drains the backlog
// and retries, so a broken activity store never loses entries nor blocks orders.
type ActivityBacklog interface {
	// Enqueue adds entries to the backlog.
	Enqueue(entries ...*activity.Entry)

	// Drain removes and returns all buffered entries.
	Drain() []*activity.Entry

	// Requeue puts entries back after a failed retry, preserving order.
	Requeue(entries []*activity.Entry)

	// Len reports the number of buffered entries.
	Len() int
}
