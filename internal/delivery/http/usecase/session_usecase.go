package usecase

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/evandrarf/quizdrill/internal/delivery/http/entity"
	"github.com/evandrarf/quizdrill/internal/delivery/http/repository"
	"github.com/evandrarf/quizdrill/internal/practice"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type SessionUsecase interface {
	StartSession(ctx context.Context, bankID uint, req entity.StartSessionRequest) (*entity.SessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*entity.SessionResponse, error)
	Navigate(ctx context.Context, sessionID string, delta int) (*entity.SessionResponse, error)
	Jump(ctx context.Context, sessionID string, index int) (*entity.SessionResponse, error)
	Answer(ctx context.Context, sessionID string, req entity.AnswerRequest) (*entity.SessionResponse, error)
	Reveal(ctx context.Context, sessionID string, req entity.RevealRequest) (*entity.RevealResponse, error)
	Advance(ctx context.Context, sessionID string) (*entity.AdvanceResponse, error)
	Unanswered(ctx context.Context, sessionID string) (*entity.SubmitPrompt, error)
	Submit(ctx context.Context, sessionID string, req entity.SubmitRequest) (*entity.SubmitResponse, error)
	MarkWrong(ctx context.Context, sessionID string) (*entity.MarkWrongResponse, error)
	EndSession(ctx context.Context, sessionID string) error
}

type SessionConfig struct {
	Banks      repository.QuestionBankRepository
	Progress   repository.ProgressRepository
	Wrong      repository.WrongQuestionRepository
	ExamConfig repository.ConfigRepository
	Log        *logrus.Logger
	// NewRand seeds each session's shuffles. Defaults to the wall clock.
	NewRand func() *rand.Rand
}

type sessionKey struct {
	bankID uint
	mode   practice.Mode
}

// liveSession owns one state machine; mu serializes its intents.
type liveSession struct {
	mu      sync.Mutex
	id      string
	key     sessionKey
	machine *practice.Machine
	closed  bool
}

type sessionUsecase struct {
	cfg SessionConfig

	// startMu serializes session starts so the (bank, mode) check and the swap are atomic.
	startMu  sync.Mutex
	mu       sync.RWMutex
	sessions map[string]*liveSession
	byKey    map[sessionKey]*liveSession
}

func NewSessionUsecase(cfg SessionConfig) SessionUsecase {
	if cfg.NewRand == nil {
		cfg.NewRand = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	return &sessionUsecase{
		cfg:      cfg,
		sessions: map[string]*liveSession{},
		byKey:    map[sessionKey]*liveSession{},
	}
}

func (u *sessionUsecase) newMachine() *practice.Machine {
	return practice.NewMachine(practice.Config{
		Banks:      u.cfg.Banks,
		Orders:     u.cfg.Progress,
		Progress:   u.cfg.Progress,
		Wrong:      u.cfg.Wrong,
		ExamConfig: u.cfg.ExamConfig,
		Rand:       u.cfg.NewRand(),
		Log:        u.cfg.Log,
	})
}

// StartSession starts a session for (bank, mode). A live session for the same
// pair is replaced once the new one started; on failure it stays untouched.
func (u *sessionUsecase) StartSession(ctx context.Context, bankID uint, req entity.StartSessionRequest) (*entity.SessionResponse, error) {
	mode, err := practice.ParseMode(req.Mode)
	if err != nil {
		return nil, &practice.Error{Kind: practice.KindValidation, Op: "start session", Err: err}
	}
	if _, err := u.cfg.Banks.FindBank(ctx, bankID); err != nil {
		return nil, storeError("start session", err, ErrBankNotFound)
	}

	opts := practice.StartOptions{Reshuffle: req.Reshuffle}
	if req.Counts != nil && mode == practice.ModeExam {
		counts := req.Counts.ToCore()
		opts.Counts = &counts
	}

	u.startMu.Lock()
	defer u.startMu.Unlock()

	key := sessionKey{bankID: bankID, mode: mode}
	u.mu.RLock()
	old := u.byKey[key]
	u.mu.RUnlock()
	if old != nil {
		// Hold the old session so none of its intents interleave with the start.
		old.mu.Lock()
		defer old.mu.Unlock()
	}

	m := u.newMachine()
	snap, err := m.Start(ctx, bankID, mode, opts)
	if err != nil {
		return nil, err
	}

	s := &liveSession{id: uuid.NewString(), key: key, machine: m}
	u.mu.Lock()
	if old != nil {
		old.closed = true
		delete(u.sessions, old.id)
	}
	u.sessions[s.id] = s
	u.byKey[key] = s
	u.mu.Unlock()

	log := u.cfg.Log.WithFields(logrus.Fields{"session_id": s.id, "bank_id": bankID, "mode": mode})
	if err := u.cfg.Banks.SetLastUsed(ctx, bankID); err != nil {
		log.WithError(err).Warn("failed to mark bank as last used")
	}
	if old != nil {
		log.WithField("replaced", old.id).Info("session replaced")
	} else {
		log.Info("session started")
	}
	return entity.NewSessionResponse(s.id, snap), nil
}

// with runs fn while holding the session's lock.
func (u *sessionUsecase) with(op, sessionID string, fn func(s *liveSession) error) error {
	u.mu.RLock()
	s := u.sessions[sessionID]
	u.mu.RUnlock()
	if s == nil {
		return notFound(op, ErrSessionNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return notFound(op, ErrSessionNotFound)
	}
	return fn(s)
}

func (u *sessionUsecase) GetSession(ctx context.Context, sessionID string) (*entity.SessionResponse, error) {
	var res *entity.SessionResponse
	err := u.with("get session", sessionID, func(s *liveSession) error {
		res = entity.NewSessionResponse(s.id, s.machine.Snapshot())
		return nil
	})
	return res, err
}

func (u *sessionUsecase) Navigate(ctx context.Context, sessionID string, delta int) (*entity.SessionResponse, error) {
	var res *entity.SessionResponse
	err := u.with("navigate", sessionID, func(s *liveSession) error {
		snap, err := s.machine.Navigate(ctx, delta)
		if err != nil {
			return err
		}
		res = entity.NewSessionResponse(s.id, snap)
		return nil
	})
	return res, err
}

func (u *sessionUsecase) Jump(ctx context.Context, sessionID string, index int) (*entity.SessionResponse, error) {
	var res *entity.SessionResponse
	err := u.with("jump", sessionID, func(s *liveSession) error {
		snap, err := s.machine.JumpTo(ctx, index)
		if err != nil {
			return err
		}
		res = entity.NewSessionResponse(s.id, snap)
		return nil
	})
	return res, err
}

func (u *sessionUsecase) Answer(ctx context.Context, sessionID string, req entity.AnswerRequest) (*entity.SessionResponse, error) {
	var res *entity.SessionResponse
	err := u.with("answer", sessionID, func(s *liveSession) error {
		snap, err := s.machine.RecordAnswer(ctx, req.QuestionID, req.Answer)
		if err != nil {
			return err
		}
		res = entity.NewSessionResponse(s.id, snap)
		return nil
	})
	return res, err
}

func (u *sessionUsecase) Reveal(ctx context.Context, sessionID string, req entity.RevealRequest) (*entity.RevealResponse, error) {
	var res *entity.RevealResponse
	err := u.with("reveal", sessionID, func(s *liveSession) error {
		out, err := s.machine.Reveal(ctx, req.QuestionID, req.Answer)
		if err != nil {
			return err
		}
		res = &entity.RevealResponse{
			Session:      entity.NewSessionResponse(s.id, out.Snapshot),
			Answer:       out.Answer,
			Correct:      out.Correct,
			AddedToWrong: out.AddedToWrong,
		}
		return nil
	})
	return res, err
}

func (u *sessionUsecase) Advance(ctx context.Context, sessionID string) (*entity.AdvanceResponse, error) {
	var res *entity.AdvanceResponse
	err := u.with("advance", sessionID, func(s *liveSession) error {
		out, err := s.machine.FinishOrAdvance(ctx)
		if err != nil {
			return err
		}
		res = &entity.AdvanceResponse{
			Session:   entity.NewSessionResponse(s.id, out.Snapshot),
			Ended:     out.Ended,
			Submitted: out.Submitted,
			Confirm:   entity.NewSubmitPrompt(out.Confirm),
		}
		if out.Ended {
			u.release(s)
			u.cfg.Log.WithField("session_id", s.id).Info("session finished")
		}
		return nil
	})
	return res, err
}

func (u *sessionUsecase) Unanswered(ctx context.Context, sessionID string) (*entity.SubmitPrompt, error) {
	var res *entity.SubmitPrompt
	err := u.with("unanswered", sessionID, func(s *liveSession) error {
		p, err := s.machine.Unanswered()
		if err != nil {
			return err
		}
		res = entity.NewSubmitPrompt(&p)
		return nil
	})
	return res, err
}

func (u *sessionUsecase) Submit(ctx context.Context, sessionID string, req entity.SubmitRequest) (*entity.SubmitResponse, error) {
	var res *entity.SubmitResponse
	err := u.with("submit", sessionID, func(s *liveSession) error {
		out, err := s.machine.SubmitExam(ctx, req.Confirmed)
		if err != nil {
			return err
		}
		res = &entity.SubmitResponse{
			Session:   entity.NewSessionResponse(s.id, out.Snapshot),
			Submitted: out.Submitted,
			Confirm:   entity.NewSubmitPrompt(out.Confirm),
		}
		return nil
	})
	return res, err
}

func (u *sessionUsecase) MarkWrong(ctx context.Context, sessionID string) (*entity.MarkWrongResponse, error) {
	var res *entity.MarkWrongResponse
	err := u.with("mark wrong", sessionID, func(s *liveSession) error {
		added, snap, err := s.machine.MarkWrong(ctx)
		if err != nil {
			return err
		}
		res = &entity.MarkWrongResponse{
			Session:        entity.NewSessionResponse(s.id, snap),
			Added:          added,
			AlreadyPresent: !added,
		}
		return nil
	})
	return res, err
}

func (u *sessionUsecase) EndSession(ctx context.Context, sessionID string) error {
	return u.with("end session", sessionID, func(s *liveSession) error {
		s.machine.End()
		u.release(s)
		u.cfg.Log.WithField("session_id", s.id).Info("session ended")
		return nil
	})
}

// release drops a session from the registry. The caller holds s.mu.
func (u *sessionUsecase) release(s *liveSession) {
	s.closed = true

	u.mu.Lock()
	delete(u.sessions, s.id)
	if u.byKey[s.key] == s {
		delete(u.byKey, s.key)
	}
	u.mu.Unlock()
}
