package practice_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/evandrarf/quizdrill/internal/practice"
	"github.com/sirupsen/logrus"
)

var errStoreDown = errors.New("store unavailable")

type memStore struct {
	questions map[uint][]practice.Question
	orders    map[string][]uint
	answers   map[string]map[uint]string
	positions map[string]int
	wrong     map[uint][]practice.WrongEntry
	exam      practice.ExamCounts

	clock        time.Time
	upserts      int
	orderWrites  int
	failPosition bool
	failAnswer   bool
	failWrongAdd bool
	failOrder    bool
}

func newMemStore() *memStore {
	return &memStore{
		questions: map[uint][]practice.Question{},
		orders:    map[string][]uint{},
		answers:   map[string]map[uint]string{},
		positions: map[string]int{},
		wrong:     map[uint][]practice.WrongEntry{},
		clock:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func modeKey(bankID uint, mode practice.Mode) string {
	return fmt.Sprintf("%d|%s", bankID, mode)
}

func (s *memStore) ListQuestions(_ context.Context, bankID uint) ([]practice.Question, error) {
	return append([]practice.Question(nil), s.questions[bankID]...), nil
}

func (s *memStore) GetOrder(_ context.Context, bankID uint, mode practice.Mode) ([]uint, error) {
	return append([]uint(nil), s.orders[modeKey(bankID, mode)]...), nil
}

func (s *memStore) ReplaceOrder(_ context.Context, bankID uint, mode practice.Mode, ids []uint) error {
	if s.failOrder {
		return errStoreDown
	}
	s.orderWrites++
	s.orders[modeKey(bankID, mode)] = append([]uint(nil), ids...)
	return nil
}

func (s *memStore) GetAnswers(_ context.Context, bankID uint, mode practice.Mode) (map[uint]string, error) {
	out := map[uint]string{}
	for k, v := range s.answers[modeKey(bankID, mode)] {
		out[k] = v
	}
	return out, nil
}

func (s *memStore) UpsertAnswer(_ context.Context, bankID uint, mode practice.Mode, questionID uint, answer string) error {
	if s.failAnswer {
		return errStoreDown
	}
	s.upserts++
	k := modeKey(bankID, mode)
	if s.answers[k] == nil {
		s.answers[k] = map[uint]string{}
	}
	s.answers[k][questionID] = answer
	return nil
}

func (s *memStore) GetPosition(_ context.Context, bankID uint, mode practice.Mode) (int, bool, error) {
	pos, ok := s.positions[modeKey(bankID, mode)]
	return pos, ok, nil
}

func (s *memStore) SetPosition(_ context.Context, bankID uint, mode practice.Mode, index int) error {
	if s.failPosition {
		return errStoreDown
	}
	s.positions[modeKey(bankID, mode)] = index
	return nil
}

func (s *memStore) Exists(_ context.Context, bankID, questionID uint) (bool, error) {
	for _, e := range s.wrong[bankID] {
		if e.Question.ID == questionID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) Add(ctx context.Context, bankID, questionID uint, answer string) error {
	if s.failWrongAdd {
		return errStoreDown
	}
	if ok, _ := s.Exists(ctx, bankID, questionID); ok {
		return nil
	}
	for _, q := range s.questions[bankID] {
		if q.ID == questionID {
			s.clock = s.clock.Add(time.Second)
			s.wrong[bankID] = append(s.wrong[bankID], practice.WrongEntry{Question: q, Answer: answer, AddedAt: s.clock})
			return nil
		}
	}
	return fmt.Errorf("question %d not in bank %d", questionID, bankID)
}

func (s *memStore) Remove(_ context.Context, bankID, questionID uint) error {
	entries := s.wrong[bankID][:0]
	for _, e := range s.wrong[bankID] {
		if e.Question.ID != questionID {
			entries = append(entries, e)
		}
	}
	s.wrong[bankID] = entries
	return nil
}

func (s *memStore) List(_ context.Context, bankID uint) ([]practice.WrongEntry, error) {
	out := append([]practice.WrongEntry(nil), s.wrong[bankID]...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].AddedAt.After(out[j].AddedAt) })
	return out, nil
}

func (s *memStore) Get(context.Context) (practice.ExamCounts, error) {
	return s.exam, nil
}

func (s *memStore) Set(_ context.Context, counts practice.ExamCounts) error {
	s.exam = counts
	return nil
}

func (s *memStore) wrongAnswer(bankID, questionID uint) (string, bool) {
	for _, e := range s.wrong[bankID] {
		if e.Question.ID == questionID {
			return e.Answer, true
		}
	}
	return "", false
}

func newMachine(store *memStore, seed int64) *practice.Machine {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return practice.NewMachine(practice.Config{
		Banks:      store,
		Orders:     store,
		Progress:   store,
		Wrong:      store,
		ExamConfig: store,
		Rand:       rand.New(rand.NewSource(seed)),
		Log:        log,
	})
}

func q(id uint, t practice.QuestionType, answer string, score float64) practice.Question {
	opts := []string{"one", "two", "three", "four"}
	if t == practice.TypeJudge {
		opts = practice.DefaultJudgeOptions
	}
	return practice.Question{ID: id, BankID: 1, Content: fmt.Sprintf("question %d", id), Type: t, Options: opts, Answer: answer, Score: score}
}

// sampleBank has singles 1,3,5, multiples 2,6 and judges 4,7, stored in
// ascending id order with the types interleaved.
func sampleBank() []practice.Question {
	return []practice.Question{
		q(1, practice.TypeSingle, "A", 1),
		q(2, practice.TypeMultiple, "AC", 2),
		q(3, practice.TypeSingle, "B", 1),
		q(4, practice.TypeJudge, "A", 1),
		q(5, practice.TypeSingle, "C", 1),
		q(6, practice.TypeMultiple, "BD", 2),
		q(7, practice.TypeJudge, "B", 1),
	}
}

func ids(qs []practice.Question) []uint {
	out := make([]uint, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}

func boolPtr(b bool) *bool { return &b }
