package usecase

import (
	"errors"

	"github.com/evandrarf/quizdrill/internal/practice"
	"gorm.io/gorm"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrBankNotFound    = errors.New("question bank not found")
)

func notFound(op string, err error) error {
	return &practice.Error{Kind: practice.KindNotFound, Op: op, Err: err}
}

// storeError classifies a repository error: a missing row becomes NotFound
// with target when one is given, anything else is a persistence failure.
func storeError(op string, err error, target error) error {
	if target != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(op, target)
	}
	return &practice.Error{Kind: practice.KindPersistence, Op: op, Err: err}
}
