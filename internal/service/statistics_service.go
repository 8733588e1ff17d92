package service

import (
	"lexilearn_backend/internal/model"
	"lexilearn_backend/internal/repository"
)

// StatisticsOverview 用户词汇学习总览
type StatisticsOverview struct {
	TotalWords       int64              `json:"totalWords"`
	Mastered         int64              `json:"mastered"`
	SomewhatFamiliar int64              `json:"somewhatFamiliar"`
	NotFamiliar      int64              `json:"notFamiliar"` // 含从未测试过的单词
	RecentTests      []model.TestRecord `json:"recentTests"`
}

type StatisticsService struct {
	ProgressRepo *repository.ProgressRepository
	RecordRepo   *repository.TestRecordRepository
	VocabRepo    *repository.VocabularyRepository
}

func NewStatisticsService(
	progressRepo *repository.ProgressRepository,
	recordRepo *repository.TestRecordRepository,
	vocabRepo *repository.VocabularyRepository,
) *StatisticsService {
	return &StatisticsService{
		ProgressRepo: progressRepo,
		RecordRepo:   recordRepo,
		VocabRepo:    vocabRepo,
	}
}

func (s *StatisticsService) Overview(userID uint, language string) (*StatisticsOverview, error) {
	total, err := s.VocabRepo.CountByLanguage(language)
	if err != nil {
		return nil, err
	}

	// 分档边界与熟练度模型一致：>=3 mastered，1-2 somewhat，0 not_familiar
	mastered, err := s.ProgressRepo.CountByMastered(userID, 3, maxMasteredCount)
	if err != nil {
		return nil, err
	}
	somewhat, err := s.ProgressRepo.CountByMastered(userID, 1, 2)
	if err != nil {
		return nil, err
	}
	trackedZero, err := s.ProgressRepo.CountByMastered(userID, 0, 0)
	if err != nil {
		return nil, err
	}

	records, err := s.RecordRepo.FindByUser(userID, 10)
	if err != nil {
		return nil, err
	}

	untouched := total - mastered - somewhat - trackedZero
	if untouched < 0 {
		untouched = 0
	}

	return &StatisticsOverview{
		TotalWords:       total,
		Mastered:         mastered,
		SomewhatFamiliar: somewhat,
		NotFamiliar:      trackedZero + untouched,
		RecentTests:      records,
	}, nil
}
