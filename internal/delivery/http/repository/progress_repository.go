package repository

import (
	"context"
	"errors"
	"time"

	"github.com/evandrarf/quizdrill/internal/entity"
	"github.com/evandrarf/quizdrill/internal/practice"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// ProgressRepository persists saved orders, answers and positions per (bank, mode).
	ProgressRepository interface {
		practice.OrderStore
		practice.ProgressStore
	}

	progressRepository struct {
		db *gorm.DB
	}
)

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) GetOrder(ctx context.Context, bankID uint, mode practice.Mode) ([]uint, error) {
	var rows []entity.QuestionOrder
	err := r.db.WithContext(ctx).
		Where("bank_id = ? AND mode = ?", bankID, string(mode)).
		Order("position asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	ids := make([]uint, len(rows))
	for i, row := range rows {
		ids[i] = row.QuestionID
	}
	return ids, nil
}

func (r *progressRepository) ReplaceOrder(ctx context.Context, bankID uint, mode practice.Mode, ids []uint) error {
	rows := make([]entity.QuestionOrder, len(ids))
	for i, id := range ids {
		rows[i] = entity.QuestionOrder{BankID: bankID, Mode: string(mode), Position: i, QuestionID: id}
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bank_id = ? AND mode = ?", bankID, string(mode)).Delete(&entity.QuestionOrder{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 500).Error
	})
}

func (r *progressRepository) GetAnswers(ctx context.Context, bankID uint, mode practice.Mode) (map[uint]string, error) {
	var rows []entity.Progress
	if err := r.db.WithContext(ctx).Where("bank_id = ? AND mode = ?", bankID, string(mode)).Find(&rows).Error; err != nil {
		return nil, err
	}
	answers := make(map[uint]string, len(rows))
	for _, row := range rows {
		answers[row.QuestionID] = row.UserAnswer
	}
	return answers, nil
}

func (r *progressRepository) UpsertAnswer(ctx context.Context, bankID uint, mode practice.Mode, questionID uint, answer string) error {
	row := entity.Progress{
		BankID:     bankID,
		Mode:       string(mode),
		QuestionID: questionID,
		UserAnswer: answer,
		AnsweredAt: time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "bank_id"}, {Name: "mode"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_answer", "answered_at"}),
	}).Create(&row).Error
}

func (r *progressRepository) GetPosition(ctx context.Context, bankID uint, mode practice.Mode) (int, bool, error) {
	var row entity.PracticePosition
	err := r.db.WithContext(ctx).Where("bank_id = ? AND mode = ?", bankID, string(mode)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return row.Position, true, nil
}

func (r *progressRepository) SetPosition(ctx context.Context, bankID uint, mode practice.Mode, index int) error {
	row := entity.PracticePosition{BankID: bankID, Mode: string(mode), Position: index}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "bank_id"}, {Name: "mode"}},
		DoUpdates: clause.AssignmentColumns([]string{"position", "updated_at"}),
	}).Create(&row).Error
}
