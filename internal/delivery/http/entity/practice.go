package entity

import (
	"time"

	"github.com/evandrarf/quizdrill/internal/practice"
)

// DecisionReshuffle is returned with 409 when a saved random order can be reused.
const DecisionReshuffle = "reshuffle"

type ExamCounts struct {
	Single   int `json:"single" validate:"min=0"`
	Multiple int `json:"multiple" validate:"min=0"`
	Judge    int `json:"judge" validate:"min=0"`
}

func (c ExamCounts) ToCore() practice.ExamCounts {
	return practice.ExamCounts{Single: c.Single, Multiple: c.Multiple, Judge: c.Judge}
}

func NewExamCounts(c practice.ExamCounts) ExamCounts {
	return ExamCounts{Single: c.Single, Multiple: c.Multiple, Judge: c.Judge}
}

// StartSessionRequest.Reshuffle answers the saved random order decision; Counts applies to exam mode.
type StartSessionRequest struct {
	Mode      string      `json:"mode" validate:"required,oneof=sequence random exam wrong"`
	Reshuffle *bool       `json:"reshuffle"`
	Counts    *ExamCounts `json:"counts" validate:"omitempty"`
}

type NavigateRequest struct {
	Delta int `json:"delta" validate:"required,oneof=-1 1"`
}

type JumpRequest struct {
	Index *int `json:"index" validate:"required,min=0"`
}

type AnswerRequest struct {
	QuestionID uint   `json:"question_id" validate:"required"`
	Answer     string `json:"answer" validate:"required,answer,max=64"`
}

type RevealRequest struct {
	QuestionID uint   `json:"question_id" validate:"required"`
	Answer     string `json:"answer" validate:"omitempty,answer,max=64"`
}

type SubmitRequest struct {
	Confirmed bool `json:"confirmed"`
}

type BankResponse struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	IsLastUsed    bool       `json:"is_last_used"`
	QuestionCount int        `json:"question_count"`
	TypeCounts    ExamCounts `json:"type_counts"`
}

type OptionView struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// QuestionView hides the answer key and analysis until the question is revealed.
type QuestionView struct {
	ID         uint         `json:"id"`
	Type       string       `json:"type"`
	Content    string       `json:"content"`
	Options    []OptionView `json:"options"`
	Score      float64      `json:"score"`
	Difficulty string       `json:"difficulty,omitempty"`
	Answer     string       `json:"answer,omitempty"`
	Analysis   string       `json:"analysis,omitempty"`
}

func NewQuestionView(q practice.Question, reveal bool) *QuestionView {
	v := &QuestionView{
		ID:         q.ID,
		Type:       string(q.Type),
		Content:    q.Content,
		Options:    make([]OptionView, len(q.Options)),
		Score:      q.Score,
		Difficulty: q.Difficulty,
	}
	for i, text := range q.Options {
		v.Options[i] = OptionView{Letter: practice.Letter(i), Text: text}
	}
	if reveal {
		v.Answer = q.Answer
		v.Analysis = q.Analysis
	}
	return v
}

type SessionResponse struct {
	SessionID     string               `json:"session_id"`
	State         string               `json:"state"`
	BankID        uint                 `json:"bank_id,omitempty"`
	Mode          string               `json:"mode,omitempty"`
	Position      int                  `json:"position"`
	TotalCount    int                  `json:"total_count"`
	AnsweredCount int                  `json:"answered_count"`
	DisplayNumber int                  `json:"display_number,omitempty"`
	Question      *QuestionView        `json:"question,omitempty"`
	CurrentAnswer string               `json:"current_answer"`
	IsAnswered    bool                 `json:"is_answered"`
	Revealed      bool                 `json:"revealed"`
	ExamResult    *practice.ExamResult `json:"exam_result,omitempty"`
}

func NewSessionResponse(sessionID string, snap practice.Snapshot) *SessionResponse {
	res := &SessionResponse{
		SessionID:     sessionID,
		State:         string(snap.State),
		BankID:        snap.BankID,
		Mode:          string(snap.Mode),
		Position:      snap.Position,
		TotalCount:    snap.TotalCount,
		AnsweredCount: snap.AnsweredCount,
		DisplayNumber: snap.DisplayNumber,
		CurrentAnswer: snap.CurrentAnswer,
		IsAnswered:    snap.IsAnswered,
		Revealed:      snap.Revealed,
		ExamResult:    snap.ExamResult,
	}
	if snap.CurrentQuestion != nil {
		res.Question = NewQuestionView(*snap.CurrentQuestion, snap.Revealed)
	}
	return res
}

type SubmitPrompt struct {
	Unanswered int   `json:"unanswered"`
	Positions  []int `json:"positions"`
}

func NewSubmitPrompt(p *practice.SubmitPrompt) *SubmitPrompt {
	if p == nil {
		return nil
	}
	return &SubmitPrompt{Unanswered: p.Unanswered, Positions: p.Positions}
}

type RevealResponse struct {
	Session      *SessionResponse `json:"session"`
	Answer       string           `json:"answer"`
	Correct      bool             `json:"correct"`
	AddedToWrong bool             `json:"added_to_wrong"`
}

type AdvanceResponse struct {
	Session   *SessionResponse `json:"session"`
	Ended     bool             `json:"ended"`
	Submitted bool             `json:"submitted"`
	Confirm   *SubmitPrompt    `json:"confirm,omitempty"`
}

type SubmitResponse struct {
	Session   *SessionResponse `json:"session"`
	Submitted bool             `json:"submitted"`
	Confirm   *SubmitPrompt    `json:"confirm,omitempty"`
}

type MarkWrongResponse struct {
	Session        *SessionResponse `json:"session"`
	Added          bool             `json:"added"`
	AlreadyPresent bool             `json:"already_present"`
}

type WrongQuestionResponse struct {
	Question   *QuestionView `json:"question"`
	UserAnswer string        `json:"user_answer"`
	AddedAt    time.Time     `json:"added_at"`
}
