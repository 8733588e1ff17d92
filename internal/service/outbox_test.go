package service

import (
	"lexilearn_backend/internal/config"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outboxConfig(maxAttempts, queueSize int) config.OutboxConfig {
	return config.OutboxConfig{
		MaxAttempts: maxAttempts,
		BaseBackoff: time.Millisecond,
		QueueSize:   queueSize,
	}
}

func TestOutboxDelivers(t *testing.T) {
	store := &fakeProgressStore{}
	outbox := NewProgressOutbox(store, outboxConfig(3, 16))
	outbox.Start()

	outbox.Enqueue(progressOf(1, 42, 2), nil)
	outbox.Stop()

	saved := store.saved()
	require.Len(t, saved, 1)
	assert.Equal(t, uint(42), saved[0].VocabularyID)
	assert.Equal(t, 2, saved[0].MasteredCount)
}

func TestOutboxRetriesUntilSuccess(t *testing.T) {
	// 前两次写入失败，第三次成功
	store := &fakeProgressStore{failures: 2}
	outbox := NewProgressOutbox(store, outboxConfig(5, 16))
	outbox.Start()

	var dropped atomic.Int64
	outbox.Enqueue(progressOf(1, 7, 1), func() { dropped.Add(1) })

	require.Eventually(t, func() bool {
		return len(store.saved()) == 1
	}, time.Second, 5*time.Millisecond)
	outbox.Stop()

	assert.Equal(t, int64(0), dropped.Load())
}

func TestOutboxDropsAfterMaxAttempts(t *testing.T) {
	store := &fakeProgressStore{failures: 100}
	outbox := NewProgressOutbox(store, outboxConfig(2, 16))
	outbox.Start()

	var dropped atomic.Int64
	outbox.Enqueue(progressOf(1, 7, 1), func() { dropped.Add(1) })
	outbox.Stop()

	assert.Empty(t, store.saved())
	assert.Equal(t, int64(1), dropped.Load())
}

func TestOutboxQueueFullDropsImmediately(t *testing.T) {
	// worker 未启动，队列容量1：第二条入队即丢弃
	store := &fakeProgressStore{}
	outbox := NewProgressOutbox(store, outboxConfig(3, 1))

	var dropped atomic.Int64
	outbox.Enqueue(progressOf(1, 1, 1), func() { dropped.Add(1) })
	outbox.Enqueue(progressOf(1, 2, 1), func() { dropped.Add(1) })

	assert.Equal(t, int64(1), dropped.Load())
}

func TestOutboxStopDrainsQueue(t *testing.T) {
	store := &fakeProgressStore{}
	outbox := NewProgressOutbox(store, outboxConfig(3, 16))
	outbox.Start()

	for i := 1; i <= 10; i++ {
		outbox.Enqueue(progressOf(1, uint(i), 1), nil)
	}
	outbox.Stop()

	assert.Len(t, store.saved(), 10)
}
