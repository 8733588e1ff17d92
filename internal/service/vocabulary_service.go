package service

import (
	"context"
	"encoding/json"
	"fmt"
	"lexilearn_backend/internal/config"
	"lexilearn_backend/internal/model"
	"lexilearn_backend/internal/repository"
	"lexilearn_backend/internal/util"
	"lexilearn_backend/pkg/logger"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	corpusCacheKeyPrefix = "vocab:corpus:"
	corpusCacheTTL       = time.Hour
)

type VocabularyService struct {
	VocabRepo *repository.VocabularyRepository
	Storage   *StorageService
	Redis     *redis.Client
	Cfg       *config.Config
}

func NewVocabularyService(vocabRepo *repository.VocabularyRepository, storage *StorageService, cfg *config.Config, rdb *redis.Client) *VocabularyService {
	return &VocabularyService{
		VocabRepo: vocabRepo,
		Storage:   storage,
		Redis:     rdb,
		Cfg:       cfg,
	}
}

// Corpus 返回某语种的全部语料，优先走Redis缓存。
// 缓存故障只降级为直读数据库；数据库故障原样上抛，调用方不得在无语料时开始会话。
func (s *VocabularyService) Corpus(ctx context.Context, language string) ([]model.VocabularyItem, error) {
	cacheKey := corpusCacheKeyPrefix + language

	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var items []model.VocabularyItem
			if err := json.Unmarshal([]byte(val), &items); err == nil {
				return items, nil
			}
			logger.Log.Warn("corpus cache entry corrupt, falling back to db", zap.String("language", language))
		} else if err != redis.Nil {
			logger.Log.Warn("corpus cache read failed", zap.Error(err))
		}
	}

	items, err := s.VocabRepo.FindByLanguage(language)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(items); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, data, corpusCacheTTL).Err(); err != nil {
				logger.Log.Warn("corpus cache write failed", zap.Error(err))
			}
		}
	}

	return items, nil
}

func (s *VocabularyService) Levels(ctx context.Context, language string) ([]string, error) {
	return s.VocabRepo.ListLevels(language)
}

// Groups 计算某分级的分组元信息，分组大小固定取服务端配置
func (s *VocabularyService) Groups(ctx context.Context, language, level string) ([]WordGroup, error) {
	items, err := s.Corpus(ctx, language)
	if err != nil {
		return nil, err
	}
	return BuildGroups(items, level, s.Cfg.Session.GroupSize), nil
}

// rawVocabularyItem 导入文件中的原始记录，进入流水线前先在边界做校验归一
type rawVocabularyItem struct {
	Word              string `json:"word"`
	PartOfSpeech      string `json:"partOfSpeech"`
	ChineseDefinition string `json:"chineseDefinition"`
	EnglishDefinition string `json:"englishDefinition"`
	Example           string `json:"example"`
	Level             string `json:"level"`
	Language          string `json:"language"`
}

type ImportResult struct {
	Imported  int    `json:"imported"`
	Skipped   int    `json:"skipped"`
	SourceURL string `json:"sourceUrl"`
}

// Import 导入一份JSON语料文件：归档原始文件、逐条归一校验、批量落库、失效缓存。
// 缺词头或缺分级的记录在边界直接剔除，不会进入流水线。
func (s *VocabularyService) Import(ctx context.Context, filename string, data []byte) (*ImportResult, error) {
	var raw []rawVocabularyItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid corpus file: %w", err)
	}

	archiveName := fmt.Sprintf("corpus/%s_%s", time.Now().Format("20060102150405"), filename)
	sourceURL, err := s.Storage.Upload(ctx, archiveName, strings.NewReader(string(data)), int64(len(data)), util.MimeJSON)
	if err != nil {
		// 归档失败不阻塞导入
		logger.Log.Warn("corpus archive upload failed", zap.Error(err))
	}

	items := make([]model.VocabularyItem, 0, len(raw))
	skipped := 0
	languages := make(map[string]bool)
	for _, r := range raw {
		item, ok := normalizeItem(r)
		if !ok {
			skipped++
			continue
		}
		items = append(items, item)
		languages[item.Language] = true
	}

	if err := s.VocabRepo.BulkCreate(items); err != nil {
		// 落库失败时顺手清掉刚归档的源文件，避免留下无主档案
		if sourceURL != "" {
			if cleanupErr := s.Storage.Delete(ctx, archiveName); cleanupErr != nil {
				logger.Log.Warn("corpus archive cleanup failed", zap.String("archive", archiveName), zap.Error(cleanupErr))
			}
		}
		return nil, err
	}

	if s.Redis != nil {
		for language := range languages {
			if err := s.Redis.Del(ctx, corpusCacheKeyPrefix+language).Err(); err != nil {
				logger.Log.Warn("corpus cache invalidation failed", zap.String("language", language), zap.Error(err))
			}
		}
	}

	logger.Log.Info("corpus imported",
		zap.Int("imported", len(items)),
		zap.Int("skipped", skipped),
		zap.String("file", filename))

	return &ImportResult{
		Imported:  len(items),
		Skipped:   skipped,
		SourceURL: sourceURL,
	}, nil
}

func normalizeItem(r rawVocabularyItem) (model.VocabularyItem, bool) {
	word := strings.TrimSpace(r.Word)
	level := strings.TrimSpace(r.Level)
	if word == "" || level == "" {
		return model.VocabularyItem{}, false
	}

	language := strings.TrimSpace(r.Language)
	if language == "" {
		language = util.DefaultLanguage
	}

	return model.VocabularyItem{
		Word:              word,
		PartOfSpeech:      strings.TrimSpace(r.PartOfSpeech),
		ChineseDefinition: strings.TrimSpace(r.ChineseDefinition),
		EnglishDefinition: strings.TrimSpace(r.EnglishDefinition),
		Example:           strings.TrimSpace(r.Example),
		Level:             level,
		Language:          language,
	}, true
}
