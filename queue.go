package bookpress

import (
	"sync"

	"github.com/coregx/bookpress/model"
)

// SubmissionQueue is the in-process, concurrency-safe FIFO handoff of publish
// submissions from producers to publish workers.
//
// Enqueue never blocks (bounded only by memory) and Dequeue returns
// immediately with ok=false when the queue is empty - emptiness is the normal
// idle condition, not an error. Concurrent dequeuers race fairly, but each
// submission is delivered to exactly one consumer.
type SubmissionQueue struct {
	mu    sync.Mutex
	items []model.PublishSubmission
}

// NewSubmissionQueue creates an empty submission queue.
func NewSubmissionQueue() *SubmissionQueue {
	return &SubmissionQueue{}
}

// Enqueue adds a submission to the tail of the queue.
// Safe for concurrent producers.
func (q *SubmissionQueue) Enqueue(sub model.PublishSubmission) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, sub)
}

// Dequeue removes and returns the submission at the head of the queue.
// Returns ok=false without blocking when the queue is empty.
// Safe for concurrent consumers.
func (q *SubmissionQueue) Dequeue() (model.PublishSubmission, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return model.PublishSubmission{}, false
	}
	sub := q.items[0]
	// Zero the slot so the dequeued submission is not kept alive by the
	// backing array.
	q.items[0] = model.PublishSubmission{}
	q.items = q.items[1:]
	return sub, true
}

// Len returns the number of submissions currently waiting in the queue.
func (q *SubmissionQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
