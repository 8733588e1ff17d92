package service

import (
	"lexilearn_backend/internal/model"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const DefaultGroupSize = 20

// WordGroup 某一难度分级下按字母序切出的固定大小分组
type WordGroup struct {
	GroupIndex  int                    `json:"groupIndex"` // 1-based
	StartIndex  int                    `json:"startIndex"` // 0-based，含
	EndIndex    int                    `json:"endIndex"`   // 0-based，含
	DisplayName string                 `json:"displayName"`
	Items       []model.VocabularyItem `json:"items"`
}

// BuildGroups 把某难度分级的单词按字母序切成固定大小的分组。
// 排序键为（首字母小写，全词小写）双键稳定排序，保证与源顺序无关的确定性分组。
// 所有分组恰好划分该分级的全部单词：无重叠、无遗漏、保持排序。
func BuildGroups(items []model.VocabularyItem, level string, groupSize int) []WordGroup {
	if groupSize <= 0 {
		groupSize = DefaultGroupSize
	}

	filtered := make([]model.VocabularyItem, 0, len(items))
	for _, item := range items {
		if item.Level == level {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == 0 {
		return []WordGroup{}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		wi := strings.ToLower(filtered[i].Word)
		wj := strings.ToLower(filtered[j].Word)
		fi := firstLetter(wi)
		fj := firstLetter(wj)
		if fi != fj {
			return fi < fj
		}
		return wi < wj
	})

	groups := make([]WordGroup, 0, (len(filtered)+groupSize-1)/groupSize)
	for start := 0; start < len(filtered); start += groupSize {
		end := start + groupSize
		if end > len(filtered) {
			end = len(filtered)
		}
		chunk := filtered[start:end]
		groups = append(groups, WordGroup{
			GroupIndex:  len(groups) + 1,
			StartIndex:  start,
			EndIndex:    end - 1,
			DisplayName: groupDisplayName(chunk),
			Items:       chunk,
		})
	}

	return groups
}

// groupDisplayName 由分组首尾单词的首字母生成标签，如 "A" 或 "A-C"
func groupDisplayName(chunk []model.VocabularyItem) string {
	first := upperFirstLetter(chunk[0].Word)
	last := upperFirstLetter(chunk[len(chunk)-1].Word)
	if first == last {
		return first
	}
	return first + "-" + last
}

func firstLetter(word string) rune {
	r, _ := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

func upperFirstLetter(word string) string {
	r := firstLetter(strings.ToLower(word))
	if r == 0 {
		return ""
	}
	return string(unicode.ToUpper(r))
}
