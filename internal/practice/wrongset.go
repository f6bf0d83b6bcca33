package practice

import "context"

// WrongSet is the per-bank set of questions answered incorrectly.
type WrongSet struct {
	store WrongStore
}

func NewWrongSet(store WrongStore) *WrongSet {
	return &WrongSet{store: store}
}

// AddIfAbsent records questionID with answer unless it is already a member.
// The answer of an existing member is kept.
func (w *WrongSet) AddIfAbsent(ctx context.Context, bankID, questionID uint, answer string) (added bool, err error) {
	exists, err := w.store.Exists(ctx, bankID, questionID)
	if err != nil {
		return false, persistenceError("check wrong set", err)
	}
	if exists {
		return false, nil
	}
	if err := w.store.Add(ctx, bankID, questionID, answer); err != nil {
		return false, persistenceError("add to wrong set", err)
	}
	return true, nil
}

func (w *WrongSet) Remove(ctx context.Context, bankID, questionID uint) error {
	if err := w.store.Remove(ctx, bankID, questionID); err != nil {
		return persistenceError("remove from wrong set", err)
	}
	return nil
}

// List returns the members newest first.
func (w *WrongSet) List(ctx context.Context, bankID uint) ([]WrongEntry, error) {
	entries, err := w.store.List(ctx, bankID)
	if err != nil {
		return nil, persistenceError("list wrong set", err)
	}
	return entries, nil
}
