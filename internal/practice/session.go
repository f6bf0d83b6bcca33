package practice

import (
	"context"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

type State string

const (
	StateIdle     State = "idle"
	StateActive   State = "active"
	StateFinished State = "finished"
)

// Session is the transient state of one practice run. It is only mutated
// through Machine.
type Session struct {
	BankID     uint
	Mode       Mode
	Questions  []Question
	Position   int
	Answers    map[uint]string
	Revealed   map[uint]bool
	ExamResult *ExamResult

	index   map[uint]int
	numbers []int
}

func newSession(bankID uint, mode Mode, questions []Question, answers map[uint]string) *Session {
	s := &Session{
		BankID:    bankID,
		Mode:      mode,
		Questions: questions,
		Answers:   answers,
		Revealed:  map[uint]bool{},
		index:     make(map[uint]int, len(questions)),
		numbers:   DisplayNumbers(questions),
	}
	for i, q := range questions {
		s.index[q.ID] = i
	}
	return s
}

func (s *Session) last() bool {
	return s.Position == len(s.Questions)-1
}

// Snapshot is what the presentation layer renders after every intent.
type Snapshot struct {
	State           State       `json:"state"`
	BankID          uint        `json:"bank_id,omitempty"`
	Mode            Mode        `json:"mode,omitempty"`
	Position        int         `json:"position"`
	TotalCount      int         `json:"total_count"`
	AnsweredCount   int         `json:"answered_count"`
	DisplayNumber   int         `json:"display_number,omitempty"`
	CurrentQuestion *Question   `json:"current_question,omitempty"`
	CurrentAnswer   string      `json:"current_answer"`
	IsAnswered      bool        `json:"is_answered"`
	Revealed        bool        `json:"revealed"`
	ExamResult      *ExamResult `json:"exam_result"`
}

// SubmitPrompt lists the unanswered questions of an exam so the caller can
// confirm the submission.
type SubmitPrompt struct {
	Unanswered int   `json:"unanswered"`
	Positions  []int `json:"positions"`
}

type RevealResult struct {
	Snapshot     Snapshot `json:"snapshot"`
	Answer       string   `json:"answer"`
	Correct      bool     `json:"correct"`
	AddedToWrong bool     `json:"added_to_wrong"`
}

type AdvanceResult struct {
	Snapshot Snapshot `json:"snapshot"`
	// Ended is set when a non-exam session finished its last question.
	Ended bool `json:"ended"`
	// Confirm is set when an exam has unanswered questions and needs SubmitExam.
	Confirm   *SubmitPrompt `json:"confirm,omitempty"`
	Submitted bool          `json:"submitted"`
}

type SubmitResult struct {
	Snapshot  Snapshot      `json:"snapshot"`
	Submitted bool          `json:"submitted"`
	Confirm   *SubmitPrompt `json:"confirm,omitempty"`
}

// StartOptions carries the caller's answers to the engine's decision points.
type StartOptions struct {
	// Reshuffle answers ErrReshuffleDecisionRequired for Random mode.
	Reshuffle *bool
	// Counts overrides the saved exam counts and becomes the new saved value.
	Counts *ExamCounts
}

type Config struct {
	Banks      BankStore
	Orders     OrderStore
	Progress   ProgressStore
	Wrong      WrongStore
	ExamConfig ExamConfigStore
	Rand       *rand.Rand
	Log        *logrus.Logger
}

// Machine drives one session at a time. It is not safe for concurrent use;
// callers serialize intents.
type Machine struct {
	cfg     Config
	ledger  *AnswerLedger
	wrong   *WrongSet
	rnd     *rand.Rand
	log     *logrus.Logger
	state   State
	session *Session
}

func NewMachine(cfg Config) *Machine {
	rnd := cfg.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Machine{
		cfg:    cfg,
		ledger: NewAnswerLedger(cfg.Progress),
		wrong:  NewWrongSet(cfg.Wrong),
		rnd:    rnd,
		log:    log,
		state:  StateIdle,
	}
}

func (m *Machine) State() State {
	return m.state
}

func (m *Machine) entry() *logrus.Entry {
	if m.session == nil {
		return logrus.NewEntry(m.log)
	}
	return m.log.WithFields(logrus.Fields{
		"bank_id":  m.session.BankID,
		"mode":     m.session.Mode,
		"position": m.session.Position,
	})
}

// Start builds a new session. The current session is replaced only when every
// read and write needed by the new one succeeded.
func (m *Machine) Start(ctx context.Context, bankID uint, mode Mode, opts StartOptions) (Snapshot, error) {
	var (
		s   *Session
		err error
	)
	switch mode {
	case ModeSequence, ModeRandom:
		s, err = m.startOrdered(ctx, bankID, mode, opts)
	case ModeExam:
		s, err = m.startExam(ctx, bankID, opts)
	case ModeWrong:
		s, err = m.startWrong(ctx, bankID)
	default:
		err = validationError("start", ErrUnsupportedMode)
	}
	if err != nil {
		m.log.WithFields(logrus.Fields{"bank_id": bankID, "mode": mode}).WithError(err).Warn("session not started")
		return m.Snapshot(), err
	}

	m.session = s
	m.state = StateActive
	m.entry().WithField("total", len(s.Questions)).Debug("session started")
	return m.Snapshot(), nil
}

func (m *Machine) startOrdered(ctx context.Context, bankID uint, mode Mode, opts StartOptions) (*Session, error) {
	questions, err := m.cfg.Banks.ListQuestions(ctx, bankID)
	if err != nil {
		return nil, persistenceError("load questions", err)
	}

	var existing []uint
	if mode == ModeRandom {
		if existing, err = m.cfg.Orders.GetOrder(ctx, bankID, mode); err != nil {
			return nil, persistenceError("load order", err)
		}
	}

	order, err := BuildOrder(questions, mode, existing, opts.Reshuffle, m.rnd)
	if err != nil {
		return nil, err
	}

	answers, err := m.ledger.Get(ctx, bankID, mode)
	if err != nil {
		return nil, err
	}

	// A reshuffled order starts at 0. The position is reset first so a failed
	// order write leaves the old order with a valid position.
	if !order.KeepPosition {
		if err := m.cfg.Progress.SetPosition(ctx, bankID, mode, 0); err != nil {
			return nil, persistenceError("save position", err)
		}
	}
	if order.Fresh {
		if err := m.cfg.Orders.ReplaceOrder(ctx, bankID, mode, order.IDs); err != nil {
			return nil, persistenceError("save order", err)
		}
	}

	byID := make(map[uint]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	ordered := make([]Question, 0, len(order.IDs))
	for _, id := range order.IDs {
		ordered = append(ordered, byID[id])
	}
	s := newSession(bankID, mode, ordered, answers)

	if order.KeepPosition {
		pos, ok, err := m.cfg.Progress.GetPosition(ctx, bankID, mode)
		if err != nil {
			return nil, persistenceError("load position", err)
		}
		if ok && pos >= 0 && pos < len(ordered) {
			s.Position = pos
		}
	}
	return s, nil
}

func (m *Machine) startExam(ctx context.Context, bankID uint, opts StartOptions) (*Session, error) {
	questions, err := m.cfg.Banks.ListQuestions(ctx, bankID)
	if err != nil {
		return nil, persistenceError("load questions", err)
	}
	if len(questions) == 0 {
		return nil, validationError("start exam", ErrEmptyBank)
	}

	var requested ExamCounts
	if opts.Counts != nil {
		requested = *opts.Counts
	} else if requested, err = m.cfg.ExamConfig.Get(ctx); err != nil {
		return nil, persistenceError("load exam config", err)
	}

	sampled, _, err := Sample(questions, requested, m.rnd)
	if err != nil {
		return nil, err
	}

	if opts.Counts != nil {
		if err := m.cfg.ExamConfig.Set(ctx, requested); err != nil {
			return nil, persistenceError("save exam config", err)
		}
	}
	if err := m.cfg.Progress.SetPosition(ctx, bankID, ModeExam, 0); err != nil {
		return nil, persistenceError("save position", err)
	}

	// Answers from earlier exams on the same bank do not carry over.
	return newSession(bankID, ModeExam, sampled, map[uint]string{}), nil
}

func (m *Machine) startWrong(ctx context.Context, bankID uint) (*Session, error) {
	entries, err := m.wrong.List(ctx, bankID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, validationError("start wrong practice", ErrEmptyWrongSet)
	}

	// A frozen copy: later removals show up at the next start only.
	questions := make([]Question, len(entries))
	for i, e := range entries {
		questions[i] = e.Question
	}

	answers, err := m.ledger.Get(ctx, bankID, ModeWrong)
	if err != nil {
		return nil, err
	}
	return newSession(bankID, ModeWrong, questions, answers), nil
}

// Snapshot reports the current state without changing it.
func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{State: m.state}
	s := m.session
	if s == nil {
		return snap
	}

	snap.BankID = s.BankID
	snap.Mode = s.Mode
	snap.Position = s.Position
	snap.TotalCount = len(s.Questions)
	snap.ExamResult = s.ExamResult.clone()
	for _, q := range s.Questions {
		if s.Answers[q.ID] != "" {
			snap.AnsweredCount++
		}
	}
	if len(s.Questions) == 0 {
		return snap
	}

	q := s.Questions[s.Position]
	snap.CurrentQuestion = &q
	snap.DisplayNumber = s.numbers[s.Position]
	snap.CurrentAnswer = s.Answers[q.ID]
	snap.IsAnswered = snap.CurrentAnswer != ""
	snap.Revealed = s.Revealed[q.ID] || s.ExamResult != nil
	return snap
}

// Questions returns the session's question list with display numbers.
func (m *Machine) Questions() ([]Question, []int) {
	if m.session == nil {
		return nil, nil
	}
	return append([]Question(nil), m.session.Questions...), append([]int(nil), m.session.numbers...)
}

func (m *Machine) requireSession(op string) (*Session, error) {
	if m.session == nil || m.state == StateIdle {
		return nil, validationError(op, ErrNoSession)
	}
	return m.session, nil
}

func (m *Machine) requireWritable(op string) (*Session, error) {
	s, err := m.requireSession(op)
	if err != nil {
		return nil, err
	}
	if m.state == StateFinished {
		return nil, validationError(op, ErrExamSubmitted)
	}
	return s, nil
}

// Navigate moves one question back or forward and persists the new position.
func (m *Machine) Navigate(ctx context.Context, delta int) (Snapshot, error) {
	const op = "navigate"
	s, err := m.requireSession(op)
	if err != nil {
		return m.Snapshot(), err
	}
	if delta != -1 && delta != 1 {
		return m.Snapshot(), validationError(op, ErrInvalidDelta)
	}
	return m.moveTo(ctx, op, s, s.Position+delta)
}

// JumpTo selects a question by its index in the session.
func (m *Machine) JumpTo(ctx context.Context, index int) (Snapshot, error) {
	const op = "jump"
	s, err := m.requireSession(op)
	if err != nil {
		return m.Snapshot(), err
	}
	return m.moveTo(ctx, op, s, index)
}

func (m *Machine) moveTo(ctx context.Context, op string, s *Session, target int) (Snapshot, error) {
	if target < 0 || target >= len(s.Questions) {
		m.entry().WithField("target", target).Debug("navigation blocked at boundary")
		return m.Snapshot(), notFoundError(op, ErrOutOfRange)
	}
	if err := m.cfg.Progress.SetPosition(ctx, s.BankID, s.Mode, target); err != nil {
		m.entry().WithError(err).Error("failed to save position")
		return m.Snapshot(), persistenceError(op, err)
	}
	s.Position = target
	return m.Snapshot(), nil
}

func (m *Machine) lookup(op string, s *Session, questionID uint) (Question, error) {
	i, ok := s.index[questionID]
	if !ok {
		return Question{}, notFoundError(op, ErrUnknownQuestion)
	}
	return s.Questions[i], nil
}

// RecordAnswer upserts the answer for questionID. An empty answer is ignored
// and never replaces a recorded one.
func (m *Machine) RecordAnswer(ctx context.Context, questionID uint, raw string) (Snapshot, error) {
	const op = "record answer"
	s, err := m.requireWritable(op)
	if err != nil {
		return m.Snapshot(), err
	}
	q, err := m.lookup(op, s, questionID)
	if err != nil {
		return m.Snapshot(), err
	}
	answer, err := CanonicalAnswer(q, raw)
	if err != nil {
		return m.Snapshot(), validationError(op, err)
	}
	if err := m.store(ctx, s, questionID, answer); err != nil {
		return m.Snapshot(), err
	}
	return m.Snapshot(), nil
}

func (m *Machine) store(ctx context.Context, s *Session, questionID uint, answer string) error {
	if answer == "" || s.Answers[questionID] == answer {
		return nil
	}
	if _, err := m.ledger.Upsert(ctx, s.BankID, s.Mode, questionID, answer); err != nil {
		m.entry().WithField("question_id", questionID).WithError(err).Error("failed to save answer")
		return err
	}
	s.Answers[questionID] = answer
	return nil
}

// Reveal grades the answer for questionID. raw, when not empty, is recorded
// first; otherwise the recorded answer is used. Wrong answers join the wrong set.
func (m *Machine) Reveal(ctx context.Context, questionID uint, raw string) (RevealResult, error) {
	const op = "reveal"
	s, err := m.requireWritable(op)
	if err != nil {
		return RevealResult{Snapshot: m.Snapshot()}, err
	}
	q, err := m.lookup(op, s, questionID)
	if err != nil {
		return RevealResult{Snapshot: m.Snapshot()}, err
	}

	answer, err := CanonicalAnswer(q, raw)
	if err != nil {
		return RevealResult{Snapshot: m.Snapshot()}, validationError(op, err)
	}
	if answer == "" {
		answer = s.Answers[questionID]
	}
	if answer == "" {
		return RevealResult{Snapshot: m.Snapshot()}, validationError(op, ErrNoAnswer)
	}
	if err := m.store(ctx, s, questionID, answer); err != nil {
		return RevealResult{Snapshot: m.Snapshot()}, err
	}

	res := RevealResult{Answer: answer, Correct: answer == q.Answer}
	if !res.Correct {
		added, err := m.wrong.AddIfAbsent(ctx, s.BankID, questionID, answer)
		if err != nil {
			m.entry().WithField("question_id", questionID).WithError(err).Error("failed to add to wrong set")
			return RevealResult{Snapshot: m.Snapshot()}, err
		}
		res.AddedToWrong = added
	}
	s.Revealed[questionID] = true

	res.Snapshot = m.Snapshot()
	return res, nil
}

// MarkWrong puts the current question into the wrong set with its current
// answer. added is false when it already was a member.
func (m *Machine) MarkWrong(ctx context.Context) (added bool, snap Snapshot, err error) {
	const op = "mark wrong"
	s, err := m.requireSession(op)
	if err != nil {
		return false, m.Snapshot(), err
	}
	q := s.Questions[s.Position]
	added, err = m.wrong.AddIfAbsent(ctx, s.BankID, q.ID, s.Answers[q.ID])
	if err != nil {
		return false, m.Snapshot(), err
	}
	return added, m.Snapshot(), nil
}

// FinishOrAdvance moves to the next question. On the last question an exam
// goes to submission and any other mode ends the session.
func (m *Machine) FinishOrAdvance(ctx context.Context) (AdvanceResult, error) {
	const op = "advance"
	s, err := m.requireSession(op)
	if err != nil {
		return AdvanceResult{Snapshot: m.Snapshot()}, err
	}

	if !s.last() {
		snap, err := m.Navigate(ctx, 1)
		return AdvanceResult{Snapshot: snap}, err
	}

	if s.Mode != ModeExam {
		m.entry().Debug("session completed")
		m.End()
		return AdvanceResult{Snapshot: m.Snapshot(), Ended: true}, nil
	}

	if m.state == StateFinished {
		return AdvanceResult{Snapshot: m.Snapshot()}, validationError(op, ErrExamSubmitted)
	}
	prompt := m.unanswered(s)
	if prompt.Unanswered > 0 {
		return AdvanceResult{Snapshot: m.Snapshot(), Confirm: &prompt}, nil
	}
	res, err := m.SubmitExam(ctx, true)
	return AdvanceResult{Snapshot: res.Snapshot, Submitted: res.Submitted}, err
}

// Unanswered reports the exam questions without an answer.
func (m *Machine) Unanswered() (SubmitPrompt, error) {
	s, err := m.requireExam("unanswered")
	if err != nil {
		return SubmitPrompt{}, err
	}
	return m.unanswered(s), nil
}

func (m *Machine) requireExam(op string) (*Session, error) {
	s, err := m.requireWritable(op)
	if err != nil {
		return nil, err
	}
	if s.Mode != ModeExam {
		return nil, validationError(op, ErrNotExam)
	}
	return s, nil
}

func (m *Machine) unanswered(s *Session) SubmitPrompt {
	p := SubmitPrompt{Positions: []int{}}
	for i, q := range s.Questions {
		if s.Answers[q.ID] == "" {
			p.Unanswered++
			p.Positions = append(p.Positions, s.numbers[i])
		}
	}
	return p
}

// SubmitExam scores the exam. With unanswered questions and confirmed false
// nothing changes and the prompt is returned. Every wrong or unanswered
// question joins the wrong set before the session becomes Finished.
func (m *Machine) SubmitExam(ctx context.Context, confirmed bool) (SubmitResult, error) {
	const op = "submit exam"
	s, err := m.requireExam(op)
	if err != nil {
		return SubmitResult{Snapshot: m.Snapshot()}, err
	}

	prompt := m.unanswered(s)
	if prompt.Unanswered > 0 && !confirmed {
		return SubmitResult{Snapshot: m.Snapshot(), Confirm: &prompt}, nil
	}

	result := Score(s.Questions, s.Answers)
	for _, row := range result.PerQuestion {
		if row.IsCorrect {
			continue
		}
		if _, err := m.wrong.AddIfAbsent(ctx, s.BankID, row.QuestionID, row.Answer); err != nil {
			m.entry().WithField("question_id", row.QuestionID).WithError(err).Error("failed to record wrong exam answer")
			return SubmitResult{Snapshot: m.Snapshot()}, err
		}
	}

	s.ExamResult = &result
	m.state = StateFinished
	m.entry().WithFields(logrus.Fields{
		"correct": result.CorrectCount,
		"earned":  result.EarnedScore,
		"total":   result.TotalScore,
	}).Info("exam submitted")
	return SubmitResult{Snapshot: m.Snapshot(), Submitted: true}, nil
}

// End discards the session and returns to Idle.
func (m *Machine) End() {
	m.session = nil
	m.state = StateIdle
}
