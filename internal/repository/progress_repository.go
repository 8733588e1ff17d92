package repository

import (
	"lexilearn_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// FindByUser 返回用户的全部进度记录，首次使用时为空列表
func (r *ProgressRepository) FindByUser(userID uint) ([]model.VocabularyProgress, error) {
	var entries []model.VocabularyProgress
	err := r.DB.Where("user_id = ?", userID).Find(&entries).Error
	return entries, err
}

// Upsert 按 (user_id, vocabulary_id) 插入或更新进度
func (r *ProgressRepository) Upsert(entry *model.VocabularyProgress) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "vocabulary_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"mastered_count", "last_test_date", "updated_at"}),
	}).Create(entry).Error
}

// CountByMastered 统计用户在某掌握次数区间内的单词数
func (r *ProgressRepository) CountByMastered(userID uint, min, max int) (int64, error) {
	var count int64
	err := r.DB.Model(&model.VocabularyProgress{}).
		Where("user_id = ? AND mastered_count >= ? AND mastered_count <= ?", userID, min, max).
		Count(&count).Error
	return count, err
}
