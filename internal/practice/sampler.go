package practice

import "math/rand"

// Sample draws an exam: for every type, min(requested, pool) distinct
// questions chosen uniformly without replacement, concatenated in block order.
// It returns the sampled questions and the clamped counts actually used.
func Sample(questions []Question, requested ExamCounts, rnd *rand.Rand) ([]Question, ExamCounts, error) {
	blocks := Partition(questions)
	counts := requested.Clamp(blocks.Sizes())
	if counts.Total() == 0 {
		return nil, counts, validationError("sample exam", ErrZeroExamCount)
	}

	var drawn Blocks
	for i, t := range BlockOrder {
		n := counts.Of(t)
		if n == 0 {
			continue
		}
		pool := blocks[i]
		for _, j := range rnd.Perm(len(pool))[:n] {
			drawn[i] = append(drawn[i], pool[j])
		}
	}
	return drawn.Concat(), counts, nil
}
