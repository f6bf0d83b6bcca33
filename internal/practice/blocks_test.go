package practice_test

import (
	"reflect"
	"testing"

	"github.com/evandrarf/quizdrill/internal/practice"
)

func TestPartitionKeepsInputOrder(t *testing.T) {
	qs := []practice.Question{
		{ID: 1, Type: practice.TypeJudge},
		{ID: 2, Type: practice.TypeSingle},
		{ID: 3, Type: practice.TypeMultiple},
		{ID: 4, Type: practice.TypeSingle},
		{ID: 5, Type: practice.TypeJudge},
	}

	blocks := practice.Partition(qs)
	if got := blocks.Sizes(); got != (practice.ExamCounts{Single: 2, Multiple: 1, Judge: 2}) {
		t.Fatalf("Sizes() = %+v", got)
	}

	var ids []uint
	for _, q := range blocks.Concat() {
		ids = append(ids, q.ID)
	}
	if want := []uint{2, 4, 3, 1, 5}; !reflect.DeepEqual(ids, want) {
		t.Fatalf("Concat() ids = %v, want %v", ids, want)
	}
}

func TestDisplayNumbers(t *testing.T) {
	tests := []struct {
		name  string
		types []practice.QuestionType
		want  []int
	}{
		{
			name:  "block ordered",
			types: []practice.QuestionType{practice.TypeSingle, practice.TypeSingle, practice.TypeMultiple, practice.TypeJudge},
			want:  []int{1, 2, 3, 4},
		},
		{
			name:  "interleaved uses block offsets",
			types: []practice.QuestionType{practice.TypeJudge, practice.TypeSingle, practice.TypeMultiple, practice.TypeSingle},
			want:  []int{4, 1, 3, 2},
		},
		{
			name:  "missing single block",
			types: []practice.QuestionType{practice.TypeMultiple, practice.TypeJudge, practice.TypeMultiple},
			want:  []int{1, 3, 2},
		},
		{
			name: "empty",
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs := make([]practice.Question, len(tt.types))
			for i, typ := range tt.types {
				qs[i] = practice.Question{ID: uint(i + 1), Type: typ}
			}
			if got := practice.DisplayNumbers(qs); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("DisplayNumbers() = %v, want %v", got, tt.want)
			}
		})
	}
}
