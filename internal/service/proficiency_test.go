package service

import (
	"lexilearn_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		count int
		want  model.ProficiencyLevel
	}{
		{-5, model.NotFamiliar},
		{0, model.NotFamiliar},
		{1, model.SomewhatFamiliar},
		{2, model.SomewhatFamiliar},
		{3, model.Mastered},
		{7, model.Mastered},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Classify(c.count), "count=%d", c.count)
	}
}

func TestApplyAnswerMasteredIncrements(t *testing.T) {
	assert.Equal(t, 1, ApplyAnswer(0, model.Mastered))
	assert.Equal(t, 2, ApplyAnswer(1, model.Mastered))
	assert.Equal(t, 3, ApplyAnswer(2, model.Mastered))
	// 上限封顶
	assert.Equal(t, 3, ApplyAnswer(3, model.Mastered))
	assert.Equal(t, 3, ApplyAnswer(99, model.Mastered))
}

func TestApplyAnswerSomewhatDecrements(t *testing.T) {
	assert.Equal(t, 2, ApplyAnswer(3, model.SomewhatFamiliar))
	assert.Equal(t, 1, ApplyAnswer(2, model.SomewhatFamiliar))
	assert.Equal(t, 0, ApplyAnswer(1, model.SomewhatFamiliar))
	// 下限为零
	assert.Equal(t, 0, ApplyAnswer(0, model.SomewhatFamiliar))
	assert.Equal(t, 0, ApplyAnswer(-4, model.SomewhatFamiliar))
}

func TestApplyAnswerNotFamiliarResets(t *testing.T) {
	// 完全生疏一次直接清零，而不是逐级回退
	for _, count := range []int{0, 1, 2, 3} {
		assert.Equal(t, 0, ApplyAnswer(count, model.NotFamiliar), "count=%d", count)
	}
}

func TestApplyAnswerAsymmetry(t *testing.T) {
	// 从满级掉到零只需一次 not_familiar，回到满级却要三次 mastered
	count := 3
	count = ApplyAnswer(count, model.NotFamiliar)
	assert.Equal(t, 0, count)

	for i := 0; i < 3; i++ {
		count = ApplyAnswer(count, model.Mastered)
	}
	assert.Equal(t, 3, count)
	assert.Equal(t, model.Mastered, Classify(count))
}

func TestProficiencyLevelValid(t *testing.T) {
	assert.True(t, model.Mastered.Valid())
	assert.True(t, model.SomewhatFamiliar.Valid())
	assert.True(t, model.NotFamiliar.Valid())
	assert.False(t, model.ProficiencyLevel("expert").Valid())
	assert.False(t, model.ProficiencyLevel("").Valid())
}
