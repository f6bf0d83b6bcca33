package practice

import "math/rand"

// OrderResult is what BuildOrder decided for a (bank, mode).
type OrderResult struct {
	IDs []uint
	// Fresh orders must be persisted with ReplaceOrder.
	Fresh bool
	// KeepPosition is false when the order was reshuffled and the saved
	// position no longer points at the same question.
	KeepPosition bool
}

// BuildOrder produces the presentation order for Sequence and Random modes.
//
// Sequence concatenates the type blocks in bank order. Random shuffles each
// block independently. When a saved Random order covers exactly the bank's
// current ids, reshuffle decides between reuse and regeneration; a nil
// reshuffle returns ErrReshuffleDecisionRequired so the caller can ask.
func BuildOrder(questions []Question, mode Mode, existing []uint, reshuffle *bool, rnd *rand.Rand) (OrderResult, error) {
	const op = "build order"

	blocks := Partition(questions)
	ordered := blocks.Concat()
	if len(ordered) == 0 {
		return OrderResult{}, validationError(op, ErrEmptyBank)
	}

	switch mode {
	case ModeSequence:
		return OrderResult{IDs: questionIDs(ordered), Fresh: true, KeepPosition: true}, nil

	case ModeRandom:
		if len(existing) > 0 && sameIDSet(existing, ordered) {
			if reshuffle == nil {
				return OrderResult{}, conflictError(op, ErrReshuffleDecisionRequired)
			}
			if !*reshuffle {
				ids := append([]uint(nil), existing...)
				return OrderResult{IDs: ids, KeepPosition: true}, nil
			}
		}
		for _, bucket := range blocks {
			rnd.Shuffle(len(bucket), func(i, j int) {
				bucket[i], bucket[j] = bucket[j], bucket[i]
			})
		}
		return OrderResult{IDs: questionIDs(blocks.Concat()), Fresh: true}, nil
	}

	return OrderResult{}, validationError(op, ErrUnsupportedMode)
}

func sameIDSet(ids []uint, questions []Question) bool {
	if len(ids) != len(questions) {
		return false
	}
	want := make(map[uint]struct{}, len(questions))
	for _, q := range questions {
		want[q.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := want[id]; !ok {
			return false
		}
		delete(want, id)
	}
	return len(want) == 0
}
