package mapper

import (
	"encoding/json"
	"fmt"

	dbEntity "github.com/evandrarf/quizdrill/internal/entity"
	"github.com/evandrarf/quizdrill/internal/practice"
)

// ConvertToQuestion - Convert DB row to core question. changed reports that the
// stored answer key was not in canonical form.
func ConvertToQuestion(row *dbEntity.Question) (q practice.Question, changed bool, err error) {
	t, err := practice.ParseQuestionType(row.Type)
	if err != nil {
		return practice.Question{}, false, fmt.Errorf("question %d: %w", row.ID, err)
	}

	var options []string
	if row.Options != "" {
		if err := json.Unmarshal([]byte(row.Options), &options); err != nil {
			return practice.Question{}, false, fmt.Errorf("question %d: invalid options: %w", row.ID, err)
		}
	}

	q = practice.Question{
		ID:         row.ID,
		BankID:     row.BankID,
		Content:    row.Content,
		Type:       t,
		Options:    options,
		Answer:     row.Answer,
		Score:      row.Score,
		Difficulty: row.Difficulty,
		Analysis:   row.Analysis,
	}
	q, changed, err = practice.Normalize(q)
	if err != nil {
		return practice.Question{}, false, fmt.Errorf("question %d: %w", row.ID, err)
	}
	return q, changed, nil
}

// ConvertToQuestionRow - Convert core question to DB row, options encoded as JSON
func ConvertToQuestionRow(q practice.Question) (dbEntity.Question, error) {
	options, err := json.Marshal(q.Options)
	if err != nil {
		return dbEntity.Question{}, err
	}
	return dbEntity.Question{
		ID:         q.ID,
		BankID:     q.BankID,
		Content:    q.Content,
		Type:       string(q.Type),
		Options:    string(options),
		Difficulty: q.Difficulty,
		Analysis:   q.Analysis,
		Answer:     q.Answer,
		Score:      q.Score,
	}, nil
}
