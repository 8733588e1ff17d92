package repository

import (
	"lexilearn_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository struct {
	DB *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

// ListIDs 返回用户收藏的全部单词ID
func (r *FavoriteRepository) ListIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("vocabulary_id", &ids).Error
	return ids, err
}

// Add 收藏单词，重复收藏不报错
func (r *FavoriteRepository) Add(userID, vocabularyID uint) error {
	fav := model.Favorite{UserID: userID, VocabularyID: vocabularyID}
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error
}

// Remove 取消收藏，不存在时视为成功
func (r *FavoriteRepository) Remove(userID, vocabularyID uint) error {
	return r.DB.Unscoped().
		Where("user_id = ? AND vocabulary_id = ?", userID, vocabularyID).
		Delete(&model.Favorite{}).Error
}
