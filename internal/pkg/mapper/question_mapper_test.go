package mapper

import (
	"reflect"
	"testing"

	dbEntity "github.com/evandrarf/quizdrill/internal/entity"
	"github.com/evandrarf/quizdrill/internal/practice"
)

func TestConvertToQuestion(t *testing.T) {
	tests := []struct {
		name        string
		row         dbEntity.Question
		wantType    practice.QuestionType
		wantAnswer  string
		wantOptions []string
		wantChanged bool
		wantErr     bool
	}{
		{
			name:        "single",
			row:         dbEntity.Question{ID: 1, BankID: 2, Type: "single", Options: `["a","b","c"]`, Answer: "B", Score: 1},
			wantType:    practice.TypeSingle,
			wantAnswer:  "B",
			wantOptions: []string{"a", "b", "c"},
		},
		{
			name:        "multiple stored out of order",
			row:         dbEntity.Question{ID: 2, BankID: 2, Type: "multiple", Options: `["a","b","c","d"]`, Answer: "d,a", Score: 2},
			wantType:    practice.TypeMultiple,
			wantAnswer:  "AD",
			wantOptions: []string{"a", "b", "c", "d"},
			wantChanged: true,
		},
		{
			name:        "judge without options",
			row:         dbEntity.Question{ID: 3, BankID: 2, Type: "判断", Answer: "A", Score: 1},
			wantType:    practice.TypeJudge,
			wantAnswer:  "A",
			wantOptions: practice.DefaultJudgeOptions,
		},
		{
			name:        "legacy judge keyed by option text",
			row:         dbEntity.Question{ID: 7, BankID: 2, Type: "判断", Options: `["正确","错误"]`, Answer: "错误", Score: 1},
			wantType:    practice.TypeJudge,
			wantAnswer:  "B",
			wantOptions: []string{"正确", "错误"},
			wantChanged: true,
		},
		{
			name:        "legacy judge without options",
			row:         dbEntity.Question{ID: 8, BankID: 2, Type: "判断", Answer: "正确", Score: 1},
			wantType:    practice.TypeJudge,
			wantAnswer:  "A",
			wantOptions: practice.DefaultJudgeOptions,
			wantChanged: true,
		},
		{
			name:    "unknown type",
			row:     dbEntity.Question{ID: 4, Type: "essay", Answer: "A"},
			wantErr: true,
		},
		{
			name:    "broken options",
			row:     dbEntity.Question{ID: 5, Type: "single", Options: `["a",`, Answer: "A"},
			wantErr: true,
		},
		{
			name:    "answer outside options",
			row:     dbEntity.Question{ID: 6, Type: "single", Options: `["a","b"]`, Answer: "C"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, changed, err := ConvertToQuestion(&tt.row)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", q)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.Type != tt.wantType || q.Answer != tt.wantAnswer || changed != tt.wantChanged {
				t.Fatalf("got type=%s answer=%q changed=%v", q.Type, q.Answer, changed)
			}
			if !reflect.DeepEqual(q.Options, tt.wantOptions) {
				t.Fatalf("options = %v, want %v", q.Options, tt.wantOptions)
			}
			if q.ID != tt.row.ID || q.BankID != tt.row.BankID || q.Score != tt.row.Score {
				t.Fatalf("identity fields not copied: %+v", q)
			}
		})
	}
}

func TestConvertToQuestionRow(t *testing.T) {
	row, err := ConvertToQuestionRow(practice.Question{ID: 9, BankID: 1, Type: practice.TypeMultiple, Options: []string{"x", "y"}, Answer: "AB", Score: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.Options != `["x","y"]` || row.Type != "multiple" || row.Answer != "AB" {
		t.Fatalf("row = %+v", row)
	}
}
