package service

import (
	"lexilearn_backend/internal/config"
	"lexilearn_backend/internal/model"
	"lexilearn_backend/pkg/logger"
	"lexilearn_backend/pkg/monitoring"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ProgressOutbox 进度写入的重试队列。
// 答题流程把持久化交给它之后立即返回，不被存储故障阻塞；
// 单条写入按指数退避重试，超过最大次数后丢弃并计数，由会话向前端暴露未保存数量。

type outboxEntry struct {
	entry  model.VocabularyProgress
	onDrop func()
}

type ProgressOutbox struct {
	store       ProgressStore
	queue       chan outboxEntry
	maxAttempts int
	baseBackoff time.Duration

	quit chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

func NewProgressOutbox(store ProgressStore, cfg config.OutboxConfig) *ProgressOutbox {
	return &ProgressOutbox{
		store:       store,
		queue:       make(chan outboxEntry, cfg.QueueSize),
		maxAttempts: cfg.MaxAttempts,
		baseBackoff: cfg.BaseBackoff,
		quit:        make(chan struct{}),
	}
}

func (o *ProgressOutbox) Start() {
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		for {
			select {
			case item := <-o.queue:
				o.deliver(item)
			case <-o.quit:
				// 退出前清空已入队的写入
				for {
					select {
					case item := <-o.queue:
						o.deliver(item)
					default:
						return
					}
				}
			}
		}
	}()
}

// Enqueue 非阻塞入队；队列已满时按丢弃处理
func (o *ProgressOutbox) Enqueue(entry model.VocabularyProgress, onDrop func()) {
	select {
	case o.queue <- outboxEntry{entry: entry, onDrop: onDrop}:
	default:
		o.drop(entry, onDrop)
	}
}

func (o *ProgressOutbox) Stop() {
	o.once.Do(func() {
		close(o.quit)
	})
	o.wg.Wait()
}

func (o *ProgressOutbox) deliver(item outboxEntry) {
	backoff := o.baseBackoff
	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		err := o.store.Upsert(&item.entry)
		if err == nil {
			return
		}

		logger.Log.Warn("progress write failed",
			zap.Uint("vocabularyId", item.entry.VocabularyID),
			zap.Int("attempt", attempt),
			zap.Error(err))

		if attempt == o.maxAttempts {
			break
		}

		select {
		case <-time.After(backoff):
		case <-o.quit:
			// 关闭中不再等退避，做最后一次尝试
			if err := o.store.Upsert(&item.entry); err == nil {
				return
			}
			o.drop(item.entry, item.onDrop)
			return
		}
		backoff *= 2
	}

	o.drop(item.entry, item.onDrop)
}

func (o *ProgressOutbox) drop(entry model.VocabularyProgress, onDrop func()) {
	monitoring.ProgressWritesDropped.Inc()
	logger.Log.Error("progress write dropped after retries",
		zap.Uint("userId", entry.UserID),
		zap.Uint("vocabularyId", entry.VocabularyID))
	if onDrop != nil {
		onDrop()
	}
}
