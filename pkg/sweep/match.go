package sweep

// StatementMatch is the byte range of an expression statement that is
// exactly one eligible call. Ranges are half-open [Start, End).
type StatementMatch struct {
	Start int
	End   int

	// BareBody marks a statement that is the un-braced body of a control
	// construct.
	BareBody bool
}

// matchSet deduplicates matches by exact (start, end) range. Discovery may
// reach the same enclosing statement through more than one path; only the
// first occurrence is kept, so the planner never double-plans a range.
type matchSet struct {
	seen map[[2]int]struct{}
	list []StatementMatch
}

func newMatchSet() *matchSet {
	return &matchSet{seen: make(map[[2]int]struct{})}
}

// add records a match unless its range was already seen.
// Returns true if the match was new.
func (s *matchSet) add(m StatementMatch) bool {
	key := [2]int{m.Start, m.End}
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	s.list = append(s.list, m)
	return true
}
