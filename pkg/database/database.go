package database

import (
	"fmt"
	"lexilearn_backend/internal/config"
	"lexilearn_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.VocabularyItem{},
		&model.VocabularyProgress{},
		&model.Favorite{},
		&model.TestRecord{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 空库时写入一小批默认语料，方便本地启动后立刻可用
	var count int64
	db.Model(&model.VocabularyItem{}).Count(&count)
	if count == 0 {
		defaultItems := []model.VocabularyItem{
			{Word: "abandon", PartOfSpeech: "v.", ChineseDefinition: "放弃；抛弃", EnglishDefinition: "to leave somebody or something", Example: "They had to abandon the car.", Level: "A1", Language: "en"},
			{Word: "ability", PartOfSpeech: "n.", ChineseDefinition: "能力；才能", EnglishDefinition: "the fact of being able to do something", Example: "She has the ability to explain things clearly.", Level: "A1", Language: "en"},
			{Word: "benefit", PartOfSpeech: "n.", ChineseDefinition: "好处；益处", EnglishDefinition: "an advantage that something gives you", Example: "The benefits of regular exercise are well known.", Level: "A1", Language: "en"},
			{Word: "calculate", PartOfSpeech: "v.", ChineseDefinition: "计算；核算", EnglishDefinition: "to use numbers to find out an amount", Example: "Calculate the total cost before you order.", Level: "A2", Language: "en"},
			{Word: "deliberate", PartOfSpeech: "adj.", ChineseDefinition: "故意的；深思熟虑的", EnglishDefinition: "done on purpose", Example: "It was a deliberate attempt to mislead us.", Level: "B1", Language: "en"},
		}
		for _, item := range defaultItems {
			db.Create(&item)
		}
	}

	return db, nil
}
