package practice

import (
	"fmt"
	"strings"
	"time"
)

type QuestionType string

const (
	TypeSingle   QuestionType = "single"
	TypeMultiple QuestionType = "multiple"
	TypeJudge    QuestionType = "judge"
)

// ParseQuestionType accepts the stored type labels, including the labels used
// by banks imported from the legacy desktop tool.
func ParseQuestionType(s string) (QuestionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "单选":
		return TypeSingle, nil
	case "multiple", "多选":
		return TypeMultiple, nil
	case "judge", "判断":
		return TypeJudge, nil
	}
	return "", fmt.Errorf("unknown question type %q", s)
}

type Mode string

const (
	ModeSequence Mode = "sequence"
	ModeRandom   Mode = "random"
	ModeExam     Mode = "exam"
	ModeWrong    Mode = "wrong"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeSequence, ModeRandom, ModeExam, ModeWrong:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// DefaultJudgeOptions are used for judge questions stored without options.
var DefaultJudgeOptions = []string{"Correct", "Incorrect"}

// Question is immutable for the lifetime of a session.
type Question struct {
	ID         uint         `json:"id"`
	BankID     uint         `json:"bank_id"`
	Content    string       `json:"content"`
	Type       QuestionType `json:"type"`
	Options    []string     `json:"options"`
	Answer     string       `json:"answer"`
	Score      float64      `json:"score"`
	Difficulty string       `json:"difficulty,omitempty"`
	Analysis   string       `json:"analysis,omitempty"`
}

// Letter returns the option letter for the option at index i (A, B, C...).
func Letter(i int) string {
	return string(rune('A' + i))
}

// ExamCounts holds the number of questions per type drawn for an exam.
type ExamCounts struct {
	Single   int `json:"single"`
	Multiple int `json:"multiple"`
	Judge    int `json:"judge"`
}

func (c ExamCounts) Of(t QuestionType) int {
	switch t {
	case TypeSingle:
		return c.Single
	case TypeMultiple:
		return c.Multiple
	case TypeJudge:
		return c.Judge
	}
	return 0
}

func (c ExamCounts) Total() int {
	return c.Single + c.Multiple + c.Judge
}

// Clamp limits every count to the matching pool size; negative counts become zero.
func (c ExamCounts) Clamp(pool ExamCounts) ExamCounts {
	clamp := func(n, max int) int {
		if n < 0 {
			return 0
		}
		if n > max {
			return max
		}
		return n
	}
	return ExamCounts{
		Single:   clamp(c.Single, pool.Single),
		Multiple: clamp(c.Multiple, pool.Multiple),
		Judge:    clamp(c.Judge, pool.Judge),
	}
}

// WrongEntry is one member of a bank's wrong set.
type WrongEntry struct {
	Question Question  `json:"question"`
	Answer   string    `json:"answer"`
	AddedAt  time.Time `json:"added_at"`
}
