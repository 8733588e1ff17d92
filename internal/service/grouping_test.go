package service

import (
	"fmt"
	"lexilearn_backend/internal/model"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func word(id uint, w, level string) model.VocabularyItem {
	return model.VocabularyItem{
		BaseModel: model.BaseModel{ID: id},
		Word:      w,
		Level:     level,
		Language:  "en",
	}
}

func TestBuildGroupsFiltersLevel(t *testing.T) {
	items := []model.VocabularyItem{
		word(1, "apple", "A1"),
		word(2, "banana", "B2"),
		word(3, "cat", "A1"),
	}

	groups := BuildGroups(items, "A1", 20)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Items, 2)
	assert.Equal(t, "apple", groups[0].Items[0].Word)
	assert.Equal(t, "cat", groups[0].Items[1].Word)
}

func TestBuildGroupsChunking(t *testing.T) {
	items := make([]model.VocabularyItem, 0, 45)
	for i := 0; i < 45; i++ {
		items = append(items, word(uint(i+1), fmt.Sprintf("word%03d", i), "A1"))
	}

	groups := BuildGroups(items, "A1", 20)
	require.Len(t, groups, 3)

	assert.Equal(t, 1, groups[0].GroupIndex)
	assert.Equal(t, 2, groups[1].GroupIndex)
	assert.Equal(t, 3, groups[2].GroupIndex)

	assert.Len(t, groups[0].Items, 20)
	assert.Len(t, groups[1].Items, 20)
	assert.Len(t, groups[2].Items, 5)

	assert.Equal(t, 0, groups[0].StartIndex)
	assert.Equal(t, 19, groups[0].EndIndex)
	assert.Equal(t, 20, groups[1].StartIndex)
	assert.Equal(t, 39, groups[1].EndIndex)
	assert.Equal(t, 40, groups[2].StartIndex)
	assert.Equal(t, 44, groups[2].EndIndex)
}

func TestBuildGroupsPartition(t *testing.T) {
	// 所有分组恰好划分全部单词：无重叠、无遗漏
	items := make([]model.VocabularyItem, 0, 33)
	for i := 0; i < 33; i++ {
		items = append(items, word(uint(i+1), fmt.Sprintf("w%02d", i), "B1"))
	}

	groups := BuildGroups(items, "B1", 10)

	seen := make(map[uint]int)
	total := 0
	for _, g := range groups {
		total += len(g.Items)
		for _, item := range g.Items {
			seen[item.ID]++
		}
	}
	assert.Equal(t, 33, total)
	for id, n := range seen {
		assert.Equal(t, 1, n, "item %d appears %d times", id, n)
	}
}

func TestBuildGroupsDeterministic(t *testing.T) {
	// 分组与源顺序无关
	items := []model.VocabularyItem{
		word(1, "Banana", "A1"),
		word(2, "apple", "A1"),
		word(3, "cherry", "A1"),
		word(4, "Avocado", "A1"),
		word(5, "date", "A1"),
	}

	base := BuildGroups(items, "A1", 20)

	shuffled := make([]model.VocabularyItem, len(items))
	copy(shuffled, items)
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 5; trial++ {
		r.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		again := BuildGroups(shuffled, "A1", 20)
		assert.Equal(t, base, again)
	}
}

func TestBuildGroupsSortCaseInsensitive(t *testing.T) {
	items := []model.VocabularyItem{
		word(1, "Zebra", "A1"),
		word(2, "apple", "A1"),
		word(3, "Banana", "A1"),
	}

	groups := BuildGroups(items, "A1", 20)
	require.Len(t, groups, 1)

	got := []string{}
	for _, item := range groups[0].Items {
		got = append(got, item.Word)
	}
	assert.Equal(t, []string{"apple", "Banana", "Zebra"}, got)
}

func TestGroupDisplayName(t *testing.T) {
	items := []model.VocabularyItem{
		word(1, "apple", "A1"),
		word(2, "avocado", "A1"),
		word(3, "banana", "A1"),
		word(4, "cherry", "A1"),
	}

	// 单一首字母的分组
	groups := BuildGroups(items[:2], "A1", 20)
	require.Len(t, groups, 1)
	assert.Equal(t, "A", groups[0].DisplayName)

	// 跨首字母的分组
	groups = BuildGroups(items, "A1", 20)
	require.Len(t, groups, 1)
	assert.Equal(t, "A-C", groups[0].DisplayName)
}

func TestBuildGroupsEmpty(t *testing.T) {
	groups := BuildGroups(nil, "A1", 20)
	assert.Empty(t, groups)

	groups = BuildGroups([]model.VocabularyItem{word(1, "apple", "B2")}, "A1", 20)
	assert.Empty(t, groups)
}

func TestBuildGroupsDefaultSize(t *testing.T) {
	items := make([]model.VocabularyItem, 0, 25)
	for i := 0; i < 25; i++ {
		items = append(items, word(uint(i+1), fmt.Sprintf("word%03d", i), "A1"))
	}

	// groupSize<=0 回落到默认值20
	groups := BuildGroups(items, "A1", 0)
	require.Len(t, groups, 2)
	assert.Len(t, groups[0].Items, 20)
	assert.Len(t, groups[1].Items, 5)
}
