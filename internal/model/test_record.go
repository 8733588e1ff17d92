package model

import "time"

// TestRecord 一次完成的测试会话的归档结果
type TestRecord struct {
	BaseModel
	UserID             uint      `gorm:"index" json:"-"`
	Language           string    `gorm:"size:10" json:"language"`
	Level              string    `gorm:"size:10" json:"level"`
	TotalItems         int       `json:"totalItems"`
	MasteredAnswers    int       `json:"masteredAnswers"`
	SomewhatAnswers    int       `json:"somewhatAnswers"`
	NotFamiliarAnswers int       `json:"notFamiliarAnswers"`
	DurationSeconds    int       `json:"durationSeconds"`
	CompletedAt        time.Time `json:"completedAt"`
}

func (TestRecord) TableName() string {
	return "test_records"
}
