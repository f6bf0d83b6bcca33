package repository

import (
	"context"
	"time"

	"github.com/evandrarf/quizdrill/internal/entity"
	"github.com/evandrarf/quizdrill/internal/pkg/mapper"
	"github.com/evandrarf/quizdrill/internal/practice"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	WrongQuestionRepository interface {
		practice.WrongStore
	}

	wrongQuestionRepository struct {
		db  *gorm.DB
		log *logrus.Logger
		now func() time.Time
	}
)

func NewWrongQuestionRepository(db *gorm.DB, log *logrus.Logger) WrongQuestionRepository {
	return &wrongQuestionRepository{db: db, log: log, now: time.Now}
}

func (r *wrongQuestionRepository) Exists(ctx context.Context, bankID, questionID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.WrongQuestion{}).
		Where("bank_id = ? AND question_id = ?", bankID, questionID).
		Count(&count).Error
	return count > 0, err
}

// Add inserts the entry and leaves an existing one untouched.
func (r *wrongQuestionRepository) Add(ctx context.Context, bankID, questionID uint, answer string) error {
	row := entity.WrongQuestion{
		BankID:     bankID,
		QuestionID: questionID,
		UserAnswer: answer,
		AddedAt:    r.now(),
	}
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
}

func (r *wrongQuestionRepository) Remove(ctx context.Context, bankID, questionID uint) error {
	return r.db.WithContext(ctx).
		Where("bank_id = ? AND question_id = ?", bankID, questionID).
		Delete(&entity.WrongQuestion{}).Error
}

func (r *wrongQuestionRepository) List(ctx context.Context, bankID uint) ([]practice.WrongEntry, error) {
	var rows []entity.WrongQuestion
	err := r.db.WithContext(ctx).
		Preload("Question").
		Where("bank_id = ?", bankID).
		Order("added_at desc, id desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]practice.WrongEntry, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		if row.Question.ID == 0 {
			// Question deleted from the bank after it was added.
			continue
		}
		q, _, err := mapper.ConvertToQuestion(&row.Question)
		if err != nil {
			r.log.WithFields(logrus.Fields{"bank_id": bankID, "question_id": row.QuestionID}).WithError(err).Warn("skipping malformed wrong question")
			continue
		}
		entries = append(entries, practice.WrongEntry{Question: q, Answer: row.UserAnswer, AddedAt: row.AddedAt})
	}
	return entries, nil
}
