package practice_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/evandrarf/quizdrill/internal/practice"
)

func TestSampleClampsToPool(t *testing.T) {
	bank := sampleBank()
	got, counts, err := practice.Sample(bank, practice.ExamCounts{Single: 5}, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if counts != (practice.ExamCounts{Single: 3}) {
		t.Fatalf("counts = %+v, want single=3", counts)
	}
	if len(got) != 3 {
		t.Fatalf("drew %d questions, want 3", len(got))
	}
	seen := map[uint]bool{}
	for _, q := range got {
		if q.Type != practice.TypeSingle {
			t.Fatalf("drew %s question %d", q.Type, q.ID)
		}
		if seen[q.ID] {
			t.Fatalf("question %d drawn twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestSampleBlockOrderAndDistinct(t *testing.T) {
	bank := sampleBank()
	for seed := int64(0); seed < 30; seed++ {
		got, _, err := practice.Sample(bank, practice.ExamCounts{Single: 2, Multiple: 1, Judge: 2}, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("Sample: %v", err)
		}
		want := []practice.QuestionType{practice.TypeSingle, practice.TypeSingle, practice.TypeMultiple, practice.TypeJudge, practice.TypeJudge}
		if len(got) != len(want) {
			t.Fatalf("drew %d questions, want %d", len(got), len(want))
		}
		for i, q := range got {
			if q.Type != want[i] {
				t.Fatalf("seed %d: position %d has %s, want %s", seed, i, q.Type, want[i])
			}
		}
		if got[0].ID == got[1].ID || got[3].ID == got[4].ID {
			t.Fatalf("seed %d: duplicate draw %v", seed, ids(got))
		}
	}
}

func TestSampleZeroTotal(t *testing.T) {
	bank := []practice.Question{q(1, practice.TypeSingle, "A", 1)}
	_, _, err := practice.Sample(bank, practice.ExamCounts{Multiple: 4, Judge: 2}, rand.New(rand.NewSource(1)))
	if !errors.Is(err, practice.ErrZeroExamCount) || practice.KindOf(err) != practice.KindValidation {
		t.Fatalf("expected zero count validation error, got %v", err)
	}
}
