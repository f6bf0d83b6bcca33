package practice

// QuestionResult is one row of an exam result.
type QuestionResult struct {
	QuestionID      uint         `json:"question_id"`
	Type            QuestionType `json:"type"`
	DisplayNumber   int          `json:"display_number"`
	Answer          string       `json:"answer"`
	CanonicalAnswer string       `json:"canonical_answer"`
	Answered        bool         `json:"answered"`
	IsCorrect       bool         `json:"is_correct"`
	EarnedScore     float64      `json:"earned_score"`
	MaxScore        float64      `json:"max_score"`
}

// ExamResult is produced once per submitted exam and never modified.
type ExamResult struct {
	CorrectCount int              `json:"correct_count"`
	WrongCount   int              `json:"wrong_count"`
	EarnedScore  float64          `json:"earned_score"`
	TotalScore   float64          `json:"total_score"`
	PerQuestion  []QuestionResult `json:"per_question"`
}

// Score grades questions against answers by exact string equality.
// Unanswered questions count as wrong.
func Score(questions []Question, answers map[uint]string) ExamResult {
	numbers := DisplayNumbers(questions)
	res := ExamResult{PerQuestion: make([]QuestionResult, 0, len(questions))}

	for i, q := range questions {
		answer, answered := answers[q.ID]
		answered = answered && answer != ""
		correct := answered && answer == q.Answer

		row := QuestionResult{
			QuestionID:      q.ID,
			Type:            q.Type,
			DisplayNumber:   numbers[i],
			Answer:          answer,
			CanonicalAnswer: q.Answer,
			Answered:        answered,
			IsCorrect:       correct,
			MaxScore:        q.Score,
		}
		res.TotalScore += q.Score
		if correct {
			row.EarnedScore = q.Score
			res.EarnedScore += q.Score
			res.CorrectCount++
		} else {
			res.WrongCount++
		}
		res.PerQuestion = append(res.PerQuestion, row)
	}
	return res
}

func (r *ExamResult) clone() *ExamResult {
	if r == nil {
		return nil
	}
	out := *r
	out.PerQuestion = append([]QuestionResult(nil), r.PerQuestion...)
	return &out
}
