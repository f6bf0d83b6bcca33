package repository

import (
	"context"

	"github.com/evandrarf/quizdrill/internal/entity"
	"github.com/evandrarf/quizdrill/internal/pkg/mapper"
	"github.com/evandrarf/quizdrill/internal/practice"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type (
	QuestionBankRepository interface {
		practice.BankStore

		// Bank operations
		CreateBank(db *gorm.DB, bank *entity.QuestionBank) error
		CountBanks(db *gorm.DB) (int64, error)
		FindBank(ctx context.Context, bankID uint) (*entity.QuestionBank, error)
		ListBanks(ctx context.Context) ([]entity.QuestionBank, error)
		CountByType(ctx context.Context) ([]BankTypeCount, error)

		// Last-used flag, at most one bank carries it
		SetLastUsed(ctx context.Context, bankID uint) error
		FindLastUsed(ctx context.Context) (*entity.QuestionBank, error)

		// Question operations
		CreateQuestions(db *gorm.DB, questions []entity.Question) error
	}

	questionBankRepository struct {
		db  *gorm.DB
		log *logrus.Logger
	}

	BankTypeCount struct {
		BankID uint
		Type   string
		Count  int64
	}
)

func NewQuestionBankRepository(db *gorm.DB, log *logrus.Logger) QuestionBankRepository {
	return &questionBankRepository{db: db, log: log}
}

func (r *questionBankRepository) CreateBank(db *gorm.DB, bank *entity.QuestionBank) error {
	if db == nil {
		db = r.db
	}
	return db.Create(bank).Error
}

func (r *questionBankRepository) CountBanks(db *gorm.DB) (int64, error) {
	if db == nil {
		db = r.db
	}
	var count int64
	err := db.Model(&entity.QuestionBank{}).Count(&count).Error
	return count, err
}

func (r *questionBankRepository) FindBank(ctx context.Context, bankID uint) (*entity.QuestionBank, error) {
	var bank entity.QuestionBank
	if err := r.db.WithContext(ctx).First(&bank, bankID).Error; err != nil {
		return nil, err
	}
	return &bank, nil
}

func (r *questionBankRepository) ListBanks(ctx context.Context) ([]entity.QuestionBank, error) {
	var banks []entity.QuestionBank
	err := r.db.WithContext(ctx).Order("id asc").Find(&banks).Error
	return banks, err
}

func (r *questionBankRepository) CountByType(ctx context.Context) ([]BankTypeCount, error) {
	var counts []BankTypeCount
	err := r.db.WithContext(ctx).
		Model(&entity.Question{}).
		Select("bank_id, type, COUNT(*) AS count").
		Group("bank_id, type").
		Scan(&counts).Error
	return counts, err
}

func (r *questionBankRepository) SetLastUsed(ctx context.Context, bankID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.QuestionBank{}).
			Where("is_last_used = ? AND id <> ?", true, bankID).
			Update("is_last_used", false).Error; err != nil {
			return err
		}
		res := tx.Model(&entity.QuestionBank{}).Where("id = ?", bankID).Update("is_last_used", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *questionBankRepository) FindLastUsed(ctx context.Context) (*entity.QuestionBank, error) {
	var bank entity.QuestionBank
	if err := r.db.WithContext(ctx).Where("is_last_used = ?", true).First(&bank).Error; err != nil {
		return nil, err
	}
	return &bank, nil
}

func (r *questionBankRepository) CreateQuestions(db *gorm.DB, questions []entity.Question) error {
	if db == nil {
		db = r.db
	}
	if len(questions) == 0 {
		return nil
	}
	return db.CreateInBatches(questions, 200).Error
}

// ListQuestions implements practice.BankStore. Rows that cannot be mapped are
// skipped and logged; they never reach a session.
func (r *questionBankRepository) ListQuestions(ctx context.Context, bankID uint) ([]practice.Question, error) {
	var rows []entity.Question
	if err := r.db.WithContext(ctx).Where("bank_id = ?", bankID).Order("id asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	questions := make([]practice.Question, 0, len(rows))
	for i := range rows {
		q, changed, err := mapper.ConvertToQuestion(&rows[i])
		if err != nil {
			r.log.WithFields(logrus.Fields{"bank_id": bankID, "question_id": rows[i].ID}).WithError(err).Warn("skipping malformed question")
			continue
		}
		if changed {
			r.log.WithFields(logrus.Fields{"bank_id": bankID, "question_id": q.ID}).
				Warnf("stored answer %q is not canonical, using %q", rows[i].Answer, q.Answer)
		}
		questions = append(questions, q)
	}
	return questions, nil
}
