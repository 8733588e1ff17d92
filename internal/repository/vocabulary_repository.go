package repository

import (
	"lexilearn_backend/internal/model"

	"gorm.io/gorm"
)

type VocabularyRepository struct {
	DB *gorm.DB
}

func NewVocabularyRepository(db *gorm.DB) *VocabularyRepository {
	return &VocabularyRepository{DB: db}
}

// FindByLanguage 返回某语种的全部语料，按主键序
func (r *VocabularyRepository) FindByLanguage(language string) ([]model.VocabularyItem, error) {
	var items []model.VocabularyItem
	err := r.DB.Where("language = ?", language).Order("id").Find(&items).Error
	return items, err
}

func (r *VocabularyRepository) FindByID(id uint) (*model.VocabularyItem, error) {
	var item model.VocabularyItem
	err := r.DB.First(&item, id).Error
	return &item, err
}

// ListLevels 返回某语种下出现过的难度分级，去重排序
func (r *VocabularyRepository) ListLevels(language string) ([]string, error) {
	var levels []string
	err := r.DB.Model(&model.VocabularyItem{}).
		Where("language = ?", language).
		Distinct("level").
		Order("level").
		Pluck("level", &levels).Error
	return levels, err
}

// BulkCreate 批量导入语料条目
func (r *VocabularyRepository) BulkCreate(items []model.VocabularyItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.DB.CreateInBatches(items, 200).Error
}

func (r *VocabularyRepository) CountByLanguage(language string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.VocabularyItem{}).
		Where("language = ?", language).
		Count(&count).Error
	return count, err
}
