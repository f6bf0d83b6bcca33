package practice_test

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/evandrarf/quizdrill/internal/practice"
)

func assertBlocks(t *testing.T, bank []practice.Question, order []uint) {
	t.Helper()
	typeOf := map[uint]practice.QuestionType{}
	for _, q := range bank {
		typeOf[q.ID] = q.Type
	}
	if len(order) != len(bank) {
		t.Fatalf("order has %d ids, bank has %d", len(order), len(bank))
	}
	seen := map[uint]bool{}
	rank := map[practice.QuestionType]int{practice.TypeSingle: 0, practice.TypeMultiple: 1, practice.TypeJudge: 2}
	last := 0
	for _, id := range order {
		typ, ok := typeOf[id]
		if !ok || seen[id] {
			t.Fatalf("order %v is not a permutation of the bank", order)
		}
		seen[id] = true
		if rank[typ] < last {
			t.Fatalf("order %v interleaves type blocks", order)
		}
		last = rank[typ]
	}
}

func TestBuildOrderSequence(t *testing.T) {
	bank := sampleBank()
	res, err := practice.BuildOrder(bank, practice.ModeSequence, nil, nil, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("BuildOrder: %v", err)
	}
	want := []uint{1, 3, 5, 2, 6, 4, 7}
	if !reflect.DeepEqual(res.IDs, want) {
		t.Fatalf("sequence order = %v, want %v", res.IDs, want)
	}
	if !res.Fresh || !res.KeepPosition {
		t.Fatalf("sequence order should be fresh and keep position, got %+v", res)
	}

	again, _ := practice.BuildOrder(bank, practice.ModeSequence, res.IDs, nil, rand.New(rand.NewSource(99)))
	if !reflect.DeepEqual(again.IDs, res.IDs) {
		t.Fatalf("sequence order is not deterministic: %v vs %v", again.IDs, res.IDs)
	}
}

func TestBuildOrderSequenceWithoutJudges(t *testing.T) {
	bank := []practice.Question{
		q(1, practice.TypeSingle, "A", 1),
		q(2, practice.TypeSingle, "A", 1),
		q(3, practice.TypeSingle, "A", 1),
		q(4, practice.TypeMultiple, "AB", 1),
		q(5, practice.TypeMultiple, "AB", 1),
	}
	res, err := practice.BuildOrder(bank, practice.ModeSequence, nil, nil, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("BuildOrder: %v", err)
	}
	if want := []uint{1, 2, 3, 4, 5}; !reflect.DeepEqual(res.IDs, want) {
		t.Fatalf("order = %v, want %v", res.IDs, want)
	}
}

func TestBuildOrderRandomKeepsBlocks(t *testing.T) {
	bank := sampleBank()
	for seed := int64(0); seed < 50; seed++ {
		res, err := practice.BuildOrder(bank, practice.ModeRandom, nil, nil, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		assertBlocks(t, bank, res.IDs)
		if !res.Fresh || res.KeepPosition {
			t.Fatalf("first random order must be fresh and reset position, got %+v", res)
		}
	}
}

func TestBuildOrderRandomDecision(t *testing.T) {
	bank := sampleBank()
	saved := []uint{5, 3, 1, 6, 2, 7, 4}
	rnd := rand.New(rand.NewSource(7))

	_, err := practice.BuildOrder(bank, practice.ModeRandom, saved, nil, rnd)
	if !errors.Is(err, practice.ErrReshuffleDecisionRequired) || practice.KindOf(err) != practice.KindConflict {
		t.Fatalf("expected reshuffle decision conflict, got %v", err)
	}

	reuse, err := practice.BuildOrder(bank, practice.ModeRandom, saved, boolPtr(false), rnd)
	if err != nil {
		t.Fatalf("reuse: %v", err)
	}
	if !reflect.DeepEqual(reuse.IDs, saved) || reuse.Fresh || !reuse.KeepPosition {
		t.Fatalf("reuse should return saved order untouched, got %+v", reuse)
	}

	fresh, err := practice.BuildOrder(bank, practice.ModeRandom, saved, boolPtr(true), rnd)
	if err != nil {
		t.Fatalf("reshuffle: %v", err)
	}
	if !fresh.Fresh || fresh.KeepPosition {
		t.Fatalf("reshuffle should regenerate and reset position, got %+v", fresh)
	}
	assertBlocks(t, bank, fresh.IDs)
}

func TestBuildOrderRandomRegeneratesWhenBankChanged(t *testing.T) {
	bank := sampleBank()
	// Same length, different id set: question 7 was replaced by 8.
	saved := []uint{1, 3, 5, 2, 6, 4, 8}
	res, err := practice.BuildOrder(bank, practice.ModeRandom, saved, nil, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("BuildOrder: %v", err)
	}
	if !res.Fresh || res.KeepPosition {
		t.Fatalf("edited bank must force regeneration, got %+v", res)
	}
	assertBlocks(t, bank, res.IDs)
}

func TestBuildOrderEmptyBank(t *testing.T) {
	_, err := practice.BuildOrder(nil, practice.ModeSequence, nil, nil, rand.New(rand.NewSource(1)))
	if !errors.Is(err, practice.ErrEmptyBank) || practice.KindOf(err) != practice.KindValidation {
		t.Fatalf("expected empty bank validation error, got %v", err)
	}
}

func TestBuildOrderRejectsExamMode(t *testing.T) {
	_, err := practice.BuildOrder(sampleBank(), practice.ModeExam, nil, nil, rand.New(rand.NewSource(1)))
	if !errors.Is(err, practice.ErrUnsupportedMode) {
		t.Fatalf("expected unsupported mode, got %v", err)
	}
}
