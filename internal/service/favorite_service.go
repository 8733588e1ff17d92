package service

import (
	"lexilearn_backend/internal/repository"
)

type FavoriteService struct {
	FavoriteRepo *repository.FavoriteRepository
	VocabRepo    *repository.VocabularyRepository
}

func NewFavoriteService(favoriteRepo *repository.FavoriteRepository, vocabRepo *repository.VocabularyRepository) *FavoriteService {
	return &FavoriteService{
		FavoriteRepo: favoriteRepo,
		VocabRepo:    vocabRepo,
	}
}

func (s *FavoriteService) List(userID uint) ([]uint, error) {
	ids, err := s.FavoriteRepo.ListIDs(userID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []uint{}
	}
	return ids, nil
}

// Add 收藏前校验单词存在，重复收藏幂等
func (s *FavoriteService) Add(userID, vocabularyID uint) error {
	if _, err := s.VocabRepo.FindByID(vocabularyID); err != nil {
		return err
	}
	return s.FavoriteRepo.Add(userID, vocabularyID)
}

func (s *FavoriteService) Remove(userID, vocabularyID uint) error {
	return s.FavoriteRepo.Remove(userID, vocabularyID)
}
