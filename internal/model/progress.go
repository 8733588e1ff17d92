package model

import "time"

// ProficiencyLevel 三档熟练度分类，由 masteredCount 派生，不单独落库
type ProficiencyLevel string

const (
	Mastered         ProficiencyLevel = "mastered"
	SomewhatFamiliar ProficiencyLevel = "somewhat_familiar"
	NotFamiliar      ProficiencyLevel = "not_familiar"
)

// Valid 判断是否为合法的熟练度取值
func (p ProficiencyLevel) Valid() bool {
	switch p {
	case Mastered, SomewhatFamiliar, NotFamiliar:
		return true
	}
	return false
}

// VocabularyProgress 每用户每单词一条的掌握进度记录
// currentProficiency 永远由 MasteredCount 重新计算，避免冗余字段漂移
// swagger:model VocabularyProgress
type VocabularyProgress struct {
	BaseModel
	UserID        uint      `gorm:"not null;uniqueIndex:idx_user_vocab" json:"-"`
	VocabularyID  uint      `gorm:"not null;uniqueIndex:idx_user_vocab" json:"vocabularyId"`
	MasteredCount int       `gorm:"not null;default:0" json:"masteredCount"` // 取值范围 [0,3]
	LastTestDate  time.Time `json:"lastTestDate"`
}

func (VocabularyProgress) TableName() string {
	return "vocabulary_progress"
}
