package database

import (
	"fmt"

	"github.com/evandrarf/quizdrill/internal/entity"
	"github.com/evandrarf/quizdrill/internal/pkg/mapper"
	"github.com/evandrarf/quizdrill/internal/practice"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DemoBankName - name of the bank created by SeedDemoBank
const DemoBankName = "Go basics (demo)"

// DemoQuestions - static data for the demo bank, one block per question type
var DemoQuestions = []practice.Question{
	{Type: practice.TypeSingle, Content: "Which keyword declares a constant?", Options: []string{"var", "const", "let", "static"}, Answer: "B", Score: 1, Difficulty: "easy", Analysis: "Constants are declared with const."},
	{Type: practice.TypeSingle, Content: "What is the zero value of a map?", Options: []string{"an empty map", "nil", "0", "it panics"}, Answer: "B", Score: 1, Difficulty: "easy", Analysis: "An uninitialised map is nil; reading works, writing panics."},
	{Type: practice.TypeSingle, Content: "Which statement runs a function when the surrounding function returns?", Options: []string{"go", "defer", "select", "return"}, Answer: "B", Score: 1, Difficulty: "easy", Analysis: "Deferred calls run in LIFO order on return."},
	{Type: practice.TypeSingle, Content: "How are errors usually reported in Go?", Options: []string{"exceptions", "a last error return value", "global errno", "panics"}, Answer: "B", Score: 1, Difficulty: "medium", Analysis: "Functions return an error as their last result."},
	{Type: practice.TypeMultiple, Content: "Which types are reference-like?", Options: []string{"slice", "array", "map", "channel"}, Answer: "ACD", Score: 2, Difficulty: "medium", Analysis: "Arrays are values; slices, maps and channels share underlying data."},
	{Type: practice.TypeMultiple, Content: "Which can be used in a select case?", Options: []string{"channel send", "channel receive", "mutex lock", "function call"}, Answer: "AB", Score: 2, Difficulty: "medium", Analysis: "select only multiplexes channel operations."},
	{Type: practice.TypeMultiple, Content: "Which wrap an error so errors.Is can find it?", Options: []string{"fmt.Errorf with %w", "fmt.Errorf with %v", "errors.Join", "errors.New"}, Answer: "AC", Score: 2, Difficulty: "hard", Analysis: "%w and errors.Join keep the chain."},
	{Type: practice.TypeJudge, Content: "A goroutine is an operating system thread.", Answer: "B", Score: 1, Difficulty: "easy", Analysis: "Goroutines are multiplexed onto OS threads by the runtime."},
	{Type: practice.TypeJudge, Content: "Interfaces are satisfied implicitly.", Answer: "A", Score: 1, Difficulty: "easy", Analysis: "No implements keyword is needed."},
	{Type: practice.TypeJudge, Content: "A nil slice can be appended to.", Answer: "A", Score: 1, Difficulty: "medium", Analysis: "append allocates when capacity is zero."},
}

// SeedDemoBank - creates the demo bank when the database has no banks
func SeedDemoBank(db *gorm.DB, log *logrus.Logger) error {
	var count int64
	if err := db.Model(&entity.QuestionBank{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count question banks: %w", err)
	}
	if count > 0 {
		log.Info("Question banks already present, skipping demo seed")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		bank := entity.QuestionBank{Name: DemoBankName, Description: "Sample bank covering single, multiple and judge questions"}
		if err := tx.Create(&bank).Error; err != nil {
			return fmt.Errorf("failed to seed bank: %w", err)
		}

		rows := make([]entity.Question, 0, len(DemoQuestions))
		for i, q := range DemoQuestions {
			q.BankID = bank.ID
			row, err := mapper.ConvertToQuestionRow(q)
			if err != nil {
				return fmt.Errorf("failed to encode demo question %d: %w", i, err)
			}
			rows = append(rows, row)
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to seed questions: %w", err)
		}

		log.WithField("bank_id", bank.ID).Infof("Successfully seeded demo bank with %d questions", len(rows))
		return nil
	})
}
