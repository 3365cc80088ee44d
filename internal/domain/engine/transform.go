package engine

// transform is an integral transform: a pure check, a forward step that
// expands a node into children encoding a transformed subproblem, and a
// backward step that, given a solved child, computes and places its
// parent's solution. A fresh instance is created for every check call so
// state discovered during check (e.g. which factor was pulled out) can be
// stashed on the instance and reused by forward/backward, mirroring how
// the reference implementation instantiates one transform object per node
// visited rather than sharing mutable state across the whole search.
type transform interface {
	name() string
	heuristic() bool
	check(t *Tree, i int) bool
	forward(t *Tree, i int)
	backward(t *Tree, i int) error
}

// safeTransforms lists constructors, tried in order, for every
// always-worth-applying transform (spec §4.2.1). PullConstant precedes
// Additivity's usual ordering in the reference implementation list but
// spec.md's table lists Additivity first; either order is safe since both
// checks are mutually exclusive (Sum vs. Product with a constant factor).
var safeTransforms = []func() transform{
	func() transform { return &additivity{} },
	func() transform { return &pullConstant{} },
	func() transform { return &partialFractions{} },
	func() transform { return &polynomialDivision{} },
	func() transform { return &expandTransform{} },
	func() transform { return &linearUSub{} },
}

// heuristicTransforms lists constructors, tried in priority order, for
// every branching transform (spec §4.2.1). RewriteTrig and
// InverseTrigUSub are kept late since they are the most likely to produce
// dead branches, matching the reference implementation's ordering note.
var heuristicTransforms = []func() transform{
	func() transform { return &polynomialUSub{} },
	func() transform { return &compoundAngle{} },
	func() transform { return &sinUSub{} },
	func() transform { return &productToSum{} },
	func() transform { return &trigUSub{} },
	func() transform { return &byParts{} },
	func() transform { return &rewriteTrig{} },
	func() transform { return &inverseTrigUSub{} },
	func() transform { return &genericUSub{} },
}
