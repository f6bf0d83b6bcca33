package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/evandrarf/quizdrill/internal/entity"
	"github.com/evandrarf/quizdrill/internal/practice"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	ConfigSingleCount   = "single_count"
	ConfigMultipleCount = "multiple_count"
	ConfigJudgeCount    = "judge_count"
)

type (
	// ConfigRepository stores the last used exam counts in the configs table.
	ConfigRepository interface {
		practice.ExamConfigStore
	}

	configRepository struct {
		db       *gorm.DB
		defaults practice.ExamCounts
	}
)

// NewConfigRepository returns a store that reports defaults for keys that were
// never saved.
func NewConfigRepository(db *gorm.DB, defaults practice.ExamCounts) ConfigRepository {
	return &configRepository{db: db, defaults: defaults}
}

func (r *configRepository) Get(ctx context.Context) (practice.ExamCounts, error) {
	var rows []entity.Config
	keys := []string{ConfigSingleCount, ConfigMultipleCount, ConfigJudgeCount}
	if err := r.db.WithContext(ctx).Where(map[string]any{"key": keys}).Find(&rows).Error; err != nil {
		return practice.ExamCounts{}, err
	}

	counts := r.defaults
	for _, row := range rows {
		n, err := strconv.Atoi(row.Value)
		if err != nil {
			return practice.ExamCounts{}, fmt.Errorf("config %s: %w", row.Key, err)
		}
		switch row.Key {
		case ConfigSingleCount:
			counts.Single = n
		case ConfigMultipleCount:
			counts.Multiple = n
		case ConfigJudgeCount:
			counts.Judge = n
		}
	}
	return counts, nil
}

func (r *configRepository) Set(ctx context.Context, counts practice.ExamCounts) error {
	rows := []entity.Config{
		{Key: ConfigSingleCount, Value: strconv.Itoa(counts.Single)},
		{Key: ConfigMultipleCount, Value: strconv.Itoa(counts.Multiple)},
		{Key: ConfigJudgeCount, Value: strconv.Itoa(counts.Judge)},
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
