package model

// VocabularyItem 词汇语料中的一个单词条目，由语料导入创建，运行期只读
// swagger:model VocabularyItem
type VocabularyItem struct {
	BaseModel
	Word              string `gorm:"size:100;not null;index" json:"word"`
	PartOfSpeech      string `gorm:"size:50" json:"partOfSpeech"`
	ChineseDefinition string `gorm:"type:text" json:"chineseDefinition"`
	EnglishDefinition string `gorm:"type:text" json:"englishDefinition"`
	Example           string `gorm:"type:text" json:"example"`
	Level             string `gorm:"size:10;not null;index" json:"level"`    // 难度分级标签（如 A1/B2）
	Language          string `gorm:"size:10;not null;index" json:"language"` // 语料语种标签
}

func (VocabularyItem) TableName() string {
	return "vocabulary_items"
}
