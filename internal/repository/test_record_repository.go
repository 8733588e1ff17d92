package repository

import (
	"lexilearn_backend/internal/model"

	"gorm.io/gorm"
)

type TestRecordRepository struct {
	DB *gorm.DB
}

func NewTestRecordRepository(db *gorm.DB) *TestRecordRepository {
	return &TestRecordRepository{DB: db}
}

func (r *TestRecordRepository) Create(record *model.TestRecord) error {
	return r.DB.Create(record).Error
}

func (r *TestRecordRepository) FindByUser(userID uint, limit int) ([]model.TestRecord, error) {
	var records []model.TestRecord
	err := r.DB.Where("user_id = ?", userID).
		Order("completed_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}
