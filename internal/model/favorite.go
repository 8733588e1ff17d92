package model

// Favorite 用户收藏的单词，集合语义，重复收藏幂等
type Favorite struct {
	BaseModel
	UserID       uint `gorm:"not null;uniqueIndex:idx_user_fav" json:"-"`
	VocabularyID uint `gorm:"not null;uniqueIndex:idx_user_fav" json:"vocabularyId"`
}

func (Favorite) TableName() string {
	return "favorites"
}
