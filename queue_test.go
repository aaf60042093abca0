package bookpress

import (
	"sync"
	"testing"

	"github.com/coregx/bookpress/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionQueue_FIFO(t *testing.T) {
	queue := NewSubmissionQueue()

	first := model.NewPublishSubmission("", "Dune", "Herbert", "v1", "")
	second := model.NewPublishSubmission("", "Hyperion", "Simmons", "v1", "")
	queue.Enqueue(first)
	queue.Enqueue(second)

	assert.Equal(t, 2, queue.Len())

	got, ok := queue.Dequeue()
	require.True(t, ok)
	assert.Equal(t, first.SubmissionID, got.SubmissionID)

	got, ok = queue.Dequeue()
	require.True(t, ok)
	assert.Equal(t, second.SubmissionID, got.SubmissionID)

	assert.Equal(t, 0, queue.Len())
}

func TestSubmissionQueue_DequeueEmpty(t *testing.T) {
	queue := NewSubmissionQueue()

	// Must return immediately, not block
	_, ok := queue.Dequeue()
	assert.False(t, ok)
}

func TestSubmissionQueue_InterleavedEnqueueDequeue(t *testing.T) {
	q := NewSubmissionQueue()

	// Drain and refill repeatedly so dequeues walk across previously used
	// (and since cleared) slots of the backing array.
	for round := 0; round < 3; round++ {
		first := model.NewPublishSubmission("", "Dune", "Herbert", "text", "")
		second := model.NewPublishSubmission("", "Hyperion", "Simmons", "text", "")
		q.Enqueue(first)
		q.Enqueue(second)

		got, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, first.SubmissionID, got.SubmissionID)
		assert.Equal(t, "Dune", got.Title)

		got, ok = q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, second.SubmissionID, got.SubmissionID)
		assert.Equal(t, "Hyperion", got.Title)

		assert.Equal(t, 0, q.Len())
	}
}

func TestSubmissionQueue_ConcurrentProducersAndConsumers(t *testing.T) {
	const producers = 8
	const perProducer = 50

	queue := NewSubmissionQueue()

	var produceWg sync.WaitGroup
	for p := 0; p < producers; p++ {
		produceWg.Add(1)
		go func() {
			defer produceWg.Done()
			for i := 0; i < perProducer; i++ {
				queue.Enqueue(model.NewPublishSubmission("", "Dune", "Herbert", "text", ""))
			}
		}()
	}
	produceWg.Wait()

	require.Equal(t, producers*perProducer, queue.Len())

	// Concurrent consumers: every submission must be delivered exactly once.
	var consumeWg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[string]int)
	for c := 0; c < 4; c++ {
		consumeWg.Add(1)
		go func() {
			defer consumeWg.Done()
			for {
				sub, ok := queue.Dequeue()
				if !ok {
					return
				}
				mu.Lock()
				seen[sub.SubmissionID]++
				mu.Unlock()
			}
		}()
	}
	consumeWg.Wait()

	assert.Len(t, seen, producers*perProducer)
	for id, count := range seen {
		assert.Equal(t, 1, count, "submission %s delivered %d times", id, count)
	}
	assert.Equal(t, 0, queue.Len())
}
