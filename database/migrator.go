package database

import (
	"github.com/evandrarf/quizdrill/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.QuestionBank{},
		&entity.Question{},
		&entity.QuestionOrder{},
		&entity.Progress{},
		&entity.PracticePosition{},
		&entity.WrongQuestion{},
		&entity.Config{},
	)
	return err
}
