package practice

import "context"

// BankStore reads questions owned by bank management.
type BankStore interface {
	// ListQuestions returns the bank's questions in ascending id order.
	ListQuestions(ctx context.Context, bankID uint) ([]Question, error)
}

type OrderStore interface {
	// GetOrder returns nil when no order was saved.
	GetOrder(ctx context.Context, bankID uint, mode Mode) ([]uint, error)
	// ReplaceOrder deletes the previous order and inserts ids atomically.
	ReplaceOrder(ctx context.Context, bankID uint, mode Mode, ids []uint) error
}

type ProgressStore interface {
	GetAnswers(ctx context.Context, bankID uint, mode Mode) (map[uint]string, error)
	UpsertAnswer(ctx context.Context, bankID uint, mode Mode, questionID uint, answer string) error
	GetPosition(ctx context.Context, bankID uint, mode Mode) (int, bool, error)
	SetPosition(ctx context.Context, bankID uint, mode Mode, index int) error
}

type WrongStore interface {
	Exists(ctx context.Context, bankID, questionID uint) (bool, error)
	// Add must not overwrite an existing entry.
	Add(ctx context.Context, bankID, questionID uint, answer string) error
	Remove(ctx context.Context, bankID, questionID uint) error
	// List returns entries newest first.
	List(ctx context.Context, bankID uint) ([]WrongEntry, error)
}

type ExamConfigStore interface {
	Get(ctx context.Context) (ExamCounts, error)
	Set(ctx context.Context, counts ExamCounts) error
}
