package practice

import "errors"

// Kind classifies engine errors for the caller.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindPersistence:
		return "persistence"
	}
	return "unknown"
}

var (
	ErrEmptyBank                 = errors.New("question bank has no questions")
	ErrEmptyWrongSet             = errors.New("wrong set is empty")
	ErrZeroExamCount             = errors.New("exam needs at least one question")
	ErrNoAnswer                  = errors.New("no answer selected")
	ErrInvalidAnswer             = errors.New("answer is not valid for this question")
	ErrNoSession                 = errors.New("no active session")
	ErrExamSubmitted             = errors.New("exam already submitted")
	ErrNotExam                   = errors.New("session is not an exam")
	ErrInvalidDelta              = errors.New("navigation step must be -1 or +1")
	ErrUnsupportedMode           = errors.New("mode does not use a persisted order")
	ErrOutOfRange                = errors.New("question index out of range")
	ErrUnknownQuestion           = errors.New("question is not part of this session")
	ErrReshuffleDecisionRequired = errors.New("saved random order exists, reshuffle decision required")
)

// Error carries the failing operation and its class. The wrapped error is
// one of the sentinels above or the underlying store error.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the class of err, or KindUnknown when err did not come from the engine.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func validationError(op string, err error) error {
	return &Error{Kind: KindValidation, Op: op, Err: err}
}

func notFoundError(op string, err error) error {
	return &Error{Kind: KindNotFound, Op: op, Err: err}
}

func conflictError(op string, err error) error {
	return &Error{Kind: KindConflict, Op: op, Err: err}
}

func persistenceError(op string, err error) error {
	return &Error{Kind: KindPersistence, Op: op, Err: err}
}
