package engine

import "github.com/gocas/symint/internal/domain/expr"

// nesting computes the structural complexity of e, restricted to the
// sub-expression that contains v, grounded on the reference
// implementation's nesting() helper (original_source/src/simpy/expr.py):
// 0 if e does not contain v, 1 for the bare variable, otherwise
// 1 + the maximum nesting of e's children.
func nesting(e expr.Expr, v string) int {
	if !e.Contains(v) {
		return 0
	}
	if s, ok := e.(expr.Symbol); ok && s.Name == v {
		return 1
	}
	children := e.Children()
	if len(children) == 0 {
		return 0
	}
	best := 0
	for _, c := range children {
		if n := nesting(c, v); n > best {
			best = n
		}
	}
	return 1 + best
}

// pickByNesting returns the candidate node index from cands with the
// smallest nesting value when preferMin, or the largest otherwise,
// breaking ties by the first candidate encountered.
func pickByNesting(t *Tree, cands []int, preferMin bool) int {
	best := cands[0]
	bestVal := nesting(t.node(best).Expr, t.node(best).Var)
	for _, c := range cands[1:] {
		v := nesting(t.node(c).Expr, t.node(c).Var)
		if (preferMin && v < bestVal) || (!preferMin && v > bestVal) {
			best, bestVal = c, v
		}
	}
	return best
}

// nestingNode descends from node i toward the next frontier leaf to work
// on, preferring minimum nesting at OR nodes and maximum nesting at AND
// nodes (spec §4.2.3 step 5), skipping already-finished subtrees.
// Grounded on the reference implementation's _nesting_node/_cycle
// frontier-selection logic.
func nestingNode(t *Tree, i int) (int, bool) {
	unsolved := t.unsolvedChildren(i)
	if len(unsolved) == 0 {
		if len(t.node(i).Children) == 0 && !t.isFinished(i) {
			return i, true
		}
		return 0, false
	}
	if len(unsolved) == 1 {
		return nestingNode(t, unsolved[0])
	}

	preferMin := t.node(i).Kind == Or
	secondLowest := true
	for _, c := range unsolved {
		if len(t.unsolvedChildren(c)) > 0 {
			secondLowest = false
			break
		}
	}
	if secondLowest {
		return pickByNesting(t, unsolved, preferMin), true
	}

	var reps []int
	for _, c := range unsolved {
		if r, ok := nestingNode(t, c); ok {
			reps = append(reps, r)
		}
	}
	if len(reps) == 0 {
		return 0, false
	}
	return pickByNesting(t, reps, preferMin), true
}
