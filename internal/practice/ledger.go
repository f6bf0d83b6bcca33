package practice

import "context"

// AnswerLedger keeps one answer per (bank, mode, question); the latest write wins.
type AnswerLedger struct {
	store ProgressStore
}

func NewAnswerLedger(store ProgressStore) *AnswerLedger {
	return &AnswerLedger{store: store}
}

func (l *AnswerLedger) Get(ctx context.Context, bankID uint, mode Mode) (map[uint]string, error) {
	answers, err := l.store.GetAnswers(ctx, bankID, mode)
	if err != nil {
		return nil, persistenceError("load answers", err)
	}
	if answers == nil {
		answers = map[uint]string{}
	}
	return answers, nil
}

// Upsert stores answer for the key. An empty answer is not a submission and
// is never stored; stored reports whether a write happened.
func (l *AnswerLedger) Upsert(ctx context.Context, bankID uint, mode Mode, questionID uint, answer string) (stored bool, err error) {
	if answer == "" {
		return false, nil
	}
	if err := l.store.UpsertAnswer(ctx, bankID, mode, questionID, answer); err != nil {
		return false, persistenceError("save answer", err)
	}
	return true, nil
}
