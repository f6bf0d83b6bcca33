package practice

// BlockOrder is the fixed order of type blocks in every presented sequence.
// Ordering, exam sampling and display numbering all go through it.
var BlockOrder = [...]QuestionType{TypeSingle, TypeMultiple, TypeJudge}

// Blocks holds one bucket per entry of BlockOrder.
type Blocks [len(BlockOrder)][]Question

func blockIndex(t QuestionType) int {
	for i, bt := range BlockOrder {
		if bt == t {
			return i
		}
	}
	return -1
}

// Partition buckets questions by type, keeping the input order inside each
// bucket. Questions of an unknown type are dropped.
func Partition(questions []Question) Blocks {
	var b Blocks
	for _, q := range questions {
		if i := blockIndex(q.Type); i >= 0 {
			b[i] = append(b[i], q)
		}
	}
	return b
}

// Concat joins the buckets in block order.
func (b Blocks) Concat() []Question {
	n := 0
	for _, bucket := range b {
		n += len(bucket)
	}
	out := make([]Question, 0, n)
	for _, bucket := range b {
		out = append(out, bucket...)
	}
	return out
}

// Sizes reports how many questions each bucket holds.
func (b Blocks) Sizes() ExamCounts {
	return ExamCounts{
		Single:   len(b[blockIndex(TypeSingle)]),
		Multiple: len(b[blockIndex(TypeMultiple)]),
		Judge:    len(b[blockIndex(TypeJudge)]),
	}
}

// DisplayNumbers returns the 1-based number shown for each question: the
// start offset of its type block plus its rank among questions of that type.
func DisplayNumbers(questions []Question) []int {
	var totals [len(BlockOrder)]int
	for _, q := range questions {
		if i := blockIndex(q.Type); i >= 0 {
			totals[i]++
		}
	}

	var start [len(BlockOrder)]int
	next := 1
	for i := range BlockOrder {
		start[i] = next
		next += totals[i]
	}

	numbers := make([]int, len(questions))
	var seen [len(BlockOrder)]int
	for pos, q := range questions {
		i := blockIndex(q.Type)
		if i < 0 {
			continue
		}
		numbers[pos] = start[i] + seen[i]
		seen[i]++
	}
	return numbers
}

func questionIDs(questions []Question) []uint {
	ids := make([]uint, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}
