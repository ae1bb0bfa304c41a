// Package align implements the generic two-dimensional aligner from
// spec.md §4.3: a Needleman-Wunsch-style matcher parameterized by a
// Service supplying mapping tables, costs, and match predicates.
//
// Grounded on plover_writeouts/lib/alignment.py (Cell, AlignmentService,
// aligner()). Python's ABC-with-classmethods service is translated to a
// struct of function fields, since Go has no static dispatch over a
// type parameter.
package align

// Cell is one entry in the alignment matrix: the optimal alignment of
// the first x elements of seqX to the first y elements of seqY.
type Cell[Cost any, MatchData any] struct {
	Cost Cost

	// UnmatchedXStart/UnmatchedYStart is where the current run of
	// trailing unmatched elements began; used during traceback to
	// jump back across an entire mismatch run in one step.
	UnmatchedXStart, UnmatchedYStart int

	Parent *Cell[Cost, MatchData]

	X, Y int

	HasMatch  bool
	MatchData *MatchData
}

// Service supplies the mapping table, costs, and predicates the
// aligner is parameterized by. X is the input-x element type (e.g.
// rune), Y the input-y element type (e.g. a chord key string), XKey
// the comparable key type used to index Mappings, Cost the ordered
// cost type, MatchData arbitrary match payload data, and Match the
// emitted output type.
type Service[X any, Y any, XKey comparable, Cost any, MatchData any, Match any] struct {
	// Mappings maps a candidate x-key to the collection of candidate
	// y-sequences it may align to.
	Mappings map[XKey][][]Y

	InitialCost Cost

	// Less orders two costs, lowest-first. Costs are typically tuples
	// compared lexicographically (e.g. unmatched count, then chunk
	// count); Go generics has no tuple-ordering builtin, so the
	// comparator is supplied explicitly instead of constraining Cost
	// to cmp.Ordered.
	Less func(a, b Cost) bool

	// MismatchCost computes the cost of a cell that advances without
	// closing a match.
	MismatchCost func(parent *Cell[Cost, MatchData], incX, incY bool) Cost

	// MatchCost computes the cost of a cell that closes a match,
	// given the parent cell the match extends.
	MatchCost func(parent *Cell[Cost, MatchData]) Cost

	// KeyForX derives the Mappings key for a candidate run of x
	// elements.
	KeyForX func(xs []X) XKey

	// IsMatch reports whether the actual y-slice at this position
	// matches a mapped candidate y-sequence.
	IsMatch func(actualY, candidateY []Y) bool

	// MatchPayload builds the MatchData for a closing match, given
	// the candidate x run, the mapped candidate y-sequence it matched,
	// and the prefixes of seqX/seqY that end at the match (rawX, rawY).
	MatchPayload func(xSlice []X, ySlice []Y, rawX []X, rawY []Y) MatchData

	// BuildMatch constructs one output Match for a span of the
	// optimal path, covering [start, end). matchData is nil for an
	// unmatched span.
	BuildMatch func(seqX []X, seqY []Y, start, end Cell[Cost, MatchData], matchData *MatchData) Match
}

// Align runs the aligner over inputX/inputY, producing the ordered
// sequence of Match values along the minimum-cost alignment path.
// Ordering is strictly left to right; no inversions are modeled.
func Align[X any, Y any, XKey comparable, Cost any, MatchData any, Match any](seqX []X, seqY []Y, svc *Service[X, Y, XKey, Cost, MatchData, Match]) []Match {
	nx, ny := len(seqX), len(seqY)
	matrix := make([][]*Cell[Cost, MatchData], nx+1)
	for i := range matrix {
		matrix[i] = make([]*Cell[Cost, MatchData], ny+1)
	}
	matrix[0][0] = &Cell[Cost, MatchData]{Cost: svc.InitialCost}

	createMismatch := func(x, y int, incX, incY bool) *Cell[Cost, MatchData] {
		var parent *Cell[Cost, MatchData]
		if incX {
			parent = matrix[x][y+1]
		} else {
			parent = matrix[x+1][y]
		}
		if incY {
			parent = matrix[x+1][y]
		}
		if incX && incY {
			parent = matrix[x][y]
		}
		if !incX && !incY {
			parent = matrix[x+1][y+1]
		}
		return &Cell[Cost, MatchData]{
			Cost:              svc.MismatchCost(parent, incX, incY),
			UnmatchedXStart:   parent.UnmatchedXStart,
			UnmatchedYStart:   parent.UnmatchedYStart,
			Parent:            parent,
			X:                 x + 1,
			Y:                 y + 1,
			HasMatch:          false,
		}
	}

	findMatch := func(x, y int, incX, incY bool) *Cell[Cost, MatchData] {
		domainX := seqX[:x+1]
		domainY := seqY[:y+1]

		best := createMismatch(x, y, incX, incY)

		limit := 0
		if incX {
			limit = len(domainX)
		}
		for i := 0; i <= limit; i++ {
			candidateX := domainX[len(domainX)-i:]
			xKey := svc.KeyForX(candidateX)
			candidates, ok := svc.Mappings[xKey]
			if !ok {
				continue
			}

			for _, candidateY := range candidates {
				if !incY && len(candidateY) != 0 {
					continue
				}
				if len(candidateY) > len(domainY) {
					continue
				}
				actualY := domainY[len(domainY)-len(candidateY):]
				if !svc.IsMatch(actualY, candidateY) {
					continue
				}

				parent := matrix[x+1-len(candidateX)][y+1-len(actualY)]
				matchData := svc.MatchPayload(candidateX, candidateY, domainX, domainY)
				cell := &Cell[Cost, MatchData]{
					Cost:            svc.MatchCost(parent),
					UnmatchedXStart: x + 1,
					UnmatchedYStart: y + 1,
					Parent:          parent,
					X:               x + 1,
					Y:               y + 1,
					HasMatch:        true,
					MatchData:       &matchData,
				}
				if svc.Less(cell.Cost, best.Cost) {
					best = cell
				}
			}
		}
		return best
	}

	for i := 0; i < nx; i++ {
		matrix[i+1][0] = findMatch(i, -1, true, false)
	}
	for i := 0; i < ny; i++ {
		matrix[0][i+1] = findMatch(-1, i, false, true)
	}

	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			xCand := findMatch(x, y, true, false)
			yCand := findMatch(x, y, false, true)
			xyCand := findMatch(x, y, true, true)
			matrix[x+1][y+1] = minCell(svc.Less, xCand, yCand, xyCand)
		}
	}

	var traceback func(cell *Cell[Cost, MatchData]) []Match
	traceback = func(cell *Cell[Cost, MatchData]) []Match {
		if cell.Parent == nil {
			return nil
		}
		var start *Cell[Cost, MatchData]
		var matchData *MatchData
		if cell.HasMatch {
			start = cell.Parent
			matchData = cell.MatchData
		} else {
			start = matrix[cell.Parent.UnmatchedXStart][cell.Parent.UnmatchedYStart]
			matchData = nil
		}
		out := traceback(start)
		out = append(out, svc.BuildMatch(seqX, seqY, *start, *cell, matchData))
		return out
	}

	return traceback(matrix[nx][ny])
}

func minCell[Cost any, MatchData any](less func(a, b Cost) bool, cells ...*Cell[Cost, MatchData]) *Cell[Cost, MatchData] {
	best := cells[0]
	for _, c := range cells[1:] {
		if less(c.Cost, best.Cost) {
			best = c
		}
	}
	return best
}
