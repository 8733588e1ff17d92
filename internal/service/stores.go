package service

import (
	"context"
	"lexilearn_backend/internal/model"
)

// 会话驱动只依赖这些抽象，不关心背后是 MySQL 还是别的存储。

// VocabularySource 只读词汇语料来源
type VocabularySource interface {
	Corpus(ctx context.Context, language string) ([]model.VocabularyItem, error)
}

// ProgressStore 每用户每单词的进度持久化
type ProgressStore interface {
	FindByUser(userID uint) ([]model.VocabularyProgress, error)
	Upsert(entry *model.VocabularyProgress) error
}

// FavouriteStore 用户收藏集合
type FavouriteStore interface {
	ListIDs(userID uint) ([]uint, error)
}

// RecordStore 已完成会话的测试记录归档
type RecordStore interface {
	Create(record *model.TestRecord) error
}
