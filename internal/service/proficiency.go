package service

import "lexilearn_backend/internal/model"

// 熟练度模型：masteredCount 始终被钳制在 [0,3]，三档分类由它派生。

const maxMasteredCount = 3

func clampCount(count int) int {
	if count < 0 {
		return 0
	}
	if count > maxMasteredCount {
		return maxMasteredCount
	}
	return count
}

// Classify 把掌握次数映射为三档熟练度
func Classify(masteredCount int) model.ProficiencyLevel {
	switch {
	case masteredCount >= maxMasteredCount:
		return model.Mastered
	case masteredCount >= 1:
		return model.SomewhatFamiliar
	default:
		return model.NotFamiliar
	}
}

// ApplyAnswer 根据本次作答计算新的掌握次数。
// mastered 加一、somewhat_familiar 减一、not_familiar 直接清零。
// 清零是产品既定行为：遗忘一次即回到完全生疏，而非逐级回退。
func ApplyAnswer(existingCount int, answer model.ProficiencyLevel) int {
	existingCount = clampCount(existingCount)

	switch answer {
	case model.Mastered:
		return clampCount(existingCount + 1)
	case model.SomewhatFamiliar:
		return clampCount(existingCount - 1)
	default:
		return 0
	}
}
