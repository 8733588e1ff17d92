package service

import "lexilearn_backend/internal/model"

// TestConfig 单次测试会话的筛选条件，由用户在发起会话时给出
type TestConfig struct {
	Language          string                   `json:"language"`
	Level             string                   `json:"level" binding:"required"`
	SelectedGroups    []int                    `json:"selectedGroups" binding:"required,min=1"` // 1-based groupIndex
	OnlyFavourites    bool                     `json:"onlyFavourites"`
	ProficiencyLevels []model.ProficiencyLevel `json:"proficiencyLevels" binding:"required,min=1"`
	GroupSize         int                      `json:"-"` // 服务端注入，须与分组接口一致
}

// BuildTestSet 依次按分级、分组、收藏、熟练度收窄语料，得到本次测试的单词集合。
// 空结果是合法输出（表示没有符合条件的单词），不是错误。
// 分组成员关系通过重新调用 BuildGroups 计算，排序与切块参数必须与分组接口一致，
// 否则单词到分组的映射会漂移。
func BuildTestSet(items []model.VocabularyItem, cfg TestConfig, progress []model.VocabularyProgress, favourites map[uint]bool) []model.VocabularyItem {
	result := make([]model.VocabularyItem, 0, len(items))
	for _, item := range items {
		if item.Level == cfg.Level {
			result = append(result, item)
		}
	}

	if len(cfg.SelectedGroups) > 0 {
		selected := make(map[int]bool, len(cfg.SelectedGroups))
		for _, idx := range cfg.SelectedGroups {
			selected[idx] = true
		}

		inGroup := make(map[uint]bool)
		for _, group := range BuildGroups(items, cfg.Level, cfg.GroupSize) {
			if !selected[group.GroupIndex] {
				continue
			}
			for _, item := range group.Items {
				inGroup[item.ID] = true
			}
		}

		result = keepIf(result, func(item model.VocabularyItem) bool {
			return inGroup[item.ID]
		})
	}

	if cfg.OnlyFavourites {
		result = keepIf(result, func(item model.VocabularyItem) bool {
			return favourites[item.ID]
		})
	}

	// 没有进度记录的单词按 not_familiar 处理
	counts := make(map[uint]int, len(progress))
	for _, entry := range progress {
		counts[entry.VocabularyID] = entry.MasteredCount
	}
	wanted := make(map[model.ProficiencyLevel]bool, len(cfg.ProficiencyLevels))
	for _, lvl := range cfg.ProficiencyLevels {
		wanted[lvl] = true
	}
	result = keepIf(result, func(item model.VocabularyItem) bool {
		return wanted[Classify(counts[item.ID])]
	})

	return result
}

func keepIf(items []model.VocabularyItem, pred func(model.VocabularyItem) bool) []model.VocabularyItem {
	kept := items[:0]
	for _, item := range items {
		if pred(item) {
			kept = append(kept, item)
		}
	}
	return kept
}
