package practice

import (
	"fmt"
	"strings"
	"unicode"
)

// CanonicalAnswer turns a submitted answer into the stored encoding: option
// letters, upper case, for multiple-choice questions de-duplicated and in
// option-definition order. Spaces and the separators , ; | / are ignored.
// Exact string comparison against Question.Answer is only sound for values
// produced here, so every submission and every stored key goes through it.
// An empty result means nothing was selected.
func CanonicalAnswer(q Question, raw string) (string, error) {
	if q.Type == TypeJudge {
		if i, ok := judgeOptionIndex(q, raw); ok {
			return Letter(i), nil
		}
	}

	var picked [26]bool
	count := 0
	for _, r := range raw {
		if unicode.IsSpace(r) || strings.ContainsRune(",;|/", r) {
			continue
		}
		r = unicode.ToUpper(r)
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: unexpected character %q", ErrInvalidAnswer, r)
		}
		i := int(r - 'A')
		if len(q.Options) > 0 && i >= len(q.Options) {
			return "", fmt.Errorf("%w: option %c does not exist", ErrInvalidAnswer, r)
		}
		if !picked[i] {
			picked[i] = true
			count++
		}
	}

	if count > 1 && q.Type != TypeMultiple {
		return "", fmt.Errorf("%w: %s question takes one option", ErrInvalidAnswer, q.Type)
	}

	var b strings.Builder
	for i, ok := range picked {
		if ok {
			b.WriteString(Letter(i))
		}
	}
	return b.String(), nil
}

// legacyJudgeAnswers maps the option texts stored as answer keys by banks
// imported from the legacy desktop tool.
var legacyJudgeAnswers = map[string]int{"正确": 0, "对": 0, "错误": 1, "错": 1}

// judgeOptionIndex resolves a judge answer given as option text instead of a
// letter.
func judgeOptionIndex(q Question, raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	for i, opt := range q.Options {
		if len(opt) > 1 && strings.EqualFold(opt, raw) {
			return i, true
		}
	}
	if i, ok := legacyJudgeAnswers[raw]; ok && i < len(q.Options) {
		return i, true
	}
	return 0, false
}

// Normalize applies the bank-level invariants to a stored question: judge
// questions without options get DefaultJudgeOptions and the answer key is
// canonicalized. changed reports whether the stored answer was rewritten.
func Normalize(q Question) (out Question, changed bool, err error) {
	out = q
	if out.Type == TypeJudge && len(out.Options) == 0 {
		out.Options = append([]string(nil), DefaultJudgeOptions...)
	}
	answer, err := CanonicalAnswer(out, out.Answer)
	if err != nil {
		return q, false, err
	}
	if answer == "" {
		return q, false, fmt.Errorf("%w: question %d has no answer key", ErrInvalidAnswer, q.ID)
	}
	out.Answer = answer
	return out, answer != q.Answer, nil
}
