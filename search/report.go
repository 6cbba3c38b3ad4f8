package search

import "fmt"

// Summary is the comparable cost/effort digest of one Result.
type Summary struct {
	// Cost is the number of moves on the path (len(Path)-1), or 0 when
	// no path exists.
	Cost int
	// Expansions is the number of frontier pops.
	Expansions int
}

// Summarize derives a Summary from r. A nil r summarizes to zero values.
func Summarize(r *Result) Summary {
	if r == nil {
		return Summary{}
	}
	s := Summary{Expansions: len(r.Expanded)}
	if len(r.Path) > 0 {
		s.Cost = len(r.Path) - 1
	}
	return s
}

// String renders s as "cost=N expanded=M".
func (s Summary) String() string {
	return fmt.Sprintf("cost=%d expanded=%d", s.Cost, s.Expansions)
}
