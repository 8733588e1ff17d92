package service

import (
	"lexilearn_backend/internal/model"
	"lexilearn_backend/internal/repository"
	"time"
)

// ProgressEntry 进度记录对外投影，currentProficiency 读取时重新计算
type ProgressEntry struct {
	VocabularyID       uint                   `json:"vocabularyId"`
	MasteredCount      int                    `json:"masteredCount"`
	CurrentProficiency model.ProficiencyLevel `json:"currentProficiency"`
	LastTestDate       time.Time              `json:"lastTestDate"`
}

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository) *ProgressService {
	return &ProgressService{ProgressRepo: progressRepo}
}

func (s *ProgressService) List(userID uint) ([]ProgressEntry, error) {
	records, err := s.ProgressRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	entries := make([]ProgressEntry, len(records))
	for i, record := range records {
		entries[i] = ProgressEntry{
			VocabularyID:       record.VocabularyID,
			MasteredCount:      record.MasteredCount,
			CurrentProficiency: Classify(record.MasteredCount),
			LastTestDate:       record.LastTestDate,
		}
	}
	return entries, nil
}

// Update 手工写入某单词的掌握次数，越界值钳制而非报错
func (s *ProgressService) Update(userID, vocabularyID uint, masteredCount int) (*ProgressEntry, error) {
	entry := model.VocabularyProgress{
		UserID:        userID,
		VocabularyID:  vocabularyID,
		MasteredCount: clampCount(masteredCount),
		LastTestDate:  time.Now(),
	}
	if err := s.ProgressRepo.Upsert(&entry); err != nil {
		return nil, err
	}

	return &ProgressEntry{
		VocabularyID:       entry.VocabularyID,
		MasteredCount:      entry.MasteredCount,
		CurrentProficiency: Classify(entry.MasteredCount),
		LastTestDate:       entry.LastTestDate,
	}, nil
}
