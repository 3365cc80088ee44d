package engine

import "github.com/gocas/symint/internal/domain/expr"

// Kind classifies how a node's children combine into its own solution.
type Kind int

const (
	// Unset means the node has not yet been expanded, or has a single
	// child whose solution passes up through that child's owner.
	Unset Kind = iota
	// And means every child must be solved; the parent solution combines
	// all of them (Additivity, ByParts' uv-plus-remainder node).
	And
	// Or means any one child solving is enough (RewriteTrig's three
	// rewrites, a heuristic transform that branches).
	Or
	// Solution marks a leaf whose integral is known directly (table hit
	// or a transform that produced an immediate answer).
	Solution
	// Failure marks a leaf no heuristic could advance.
	Failure
)

func (k Kind) String() string {
	switch k {
	case Unset:
		return "UNSET"
	case And:
		return "AND"
	case Or:
		return "OR"
	case Solution:
		return "SOLUTION"
	case Failure:
		return "FAILURE"
	default:
		return "?"
	}
}

// noParent marks the root node, which has no owning parent index.
const noParent = -1

// Node is one integration subproblem in the AND/OR tree: "integrate Expr
// with respect to Var". The tree is stored as a flat arena (Tree.nodes)
// addressed by integer index rather than pointers, so backward passes can
// walk parent chains without pointer aliasing concerns and the whole tree
// can be inspected or logged by index.
type Node struct {
	Expr     expr.Expr
	Var      string
	Kind     Kind
	Parent   int
	Children []int
	Depth    int

	// Solution is the antiderivative once solved, nil otherwise.
	Solution expr.Expr

	// owner is the transform whose forward created this node from its
	// parent, and whose backward computes the parent's solution from this
	// node's solution. Only the root has no owner.
	//
	// Per-invocation state a transform needs between its own check,
	// forward and backward (a substitution, a pulled-out constant, a
	// self-referential solution) lives on the owning transform's own
	// struct, not here — see pullConstant.constant, linearUSub.affine,
	// byParts.selfSolution and their siblings.
	owner transform
}

// Tree is the arena owning every node of one integration call. Node 0 is
// always the root.
type Tree struct {
	nodes []*Node
	fresh FreshNameStrategy
	used  map[string]bool
}

func newTree(e expr.Expr, v string, fresh FreshNameStrategy) *Tree {
	t := &Tree{fresh: fresh, used: map[string]bool{}}
	for _, s := range e.Symbols() {
		t.used[s] = true
	}
	t.used[v] = true
	t.nodes = append(t.nodes, &Node{Expr: e, Var: v, Parent: noParent})
	return t
}

// freshName returns a variable name distinct from every symbol seen so
// far in the tree, reserving it for future collision checks.
func (t *Tree) freshName() string {
	name := t.fresh.Next(t.used)
	t.used[name] = true
	return name
}

func (t *Tree) root() *Node { return t.nodes[0] }

func (t *Tree) node(i int) *Node { return t.nodes[i] }

// addChild appends a new node as a child of parent, returning its index.
func (t *Tree) addChild(parent int, e expr.Expr, v string) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, &Node{
		Expr:   e,
		Var:    v,
		Parent: noParent,
		Depth:  t.nodes[parent].Depth + 1,
	})
	t.nodes[idx].Parent = parent
	t.nodes[parent].Children = append(t.nodes[parent].Children, idx)
	return idx
}

// unfinishedLeaves returns the indices of every node with no children and
// a Kind of Unset (i.e. not yet a SOLUTION, FAILURE, AND or OR node).
func (t *Tree) unfinishedLeaves() []int {
	var out []int
	for i, n := range t.nodes {
		if n.Kind == Unset && len(n.Children) == 0 {
			out = append(out, i)
		}
	}
	return out
}

// allChildrenSolved reports whether every child of node i is SOLUTION.
func (t *Tree) allChildrenSolved(i int) bool {
	for _, c := range t.nodes[i].Children {
		if t.nodes[c].Kind != Solution {
			return false
		}
	}
	return true
}

// anyChildSolved reports whether at least one child of node i is SOLUTION.
func (t *Tree) anyChildSolved(i int) (int, bool) {
	for _, c := range t.nodes[i].Children {
		if t.nodes[c].Kind == Solution {
			return c, true
		}
	}
	return 0, false
}

// allChildrenFailed reports whether every child of node i is FAILURE.
func (t *Tree) allChildrenFailed(i int) bool {
	for _, c := range t.nodes[i].Children {
		if t.nodes[c].Kind != Failure {
			return false
		}
	}
	return true
}

// nearestHeuristicAncestor walks up from i itself, skipping nodes whose
// owner is not heuristic (the safe transforms and the ByParts combine
// step), and returns the owner transform of the first node on that path
// owned by a heuristic transform, or nil. Used by the
// loop-prevention rule in §4.2.3.
func (t *Tree) nearestHeuristicAncestor(i int) transform {
	cur := i
	for cur != noParent {
		n := t.nodes[cur]
		if n.owner != nil && n.owner.heuristic() {
			return n.owner
		}
		cur = n.Parent
	}
	return nil
}

// nearestOrAncestor walks up from i and returns the index of the nearest
// ancestor of Kind Or, or -1 if none exists.
func (t *Tree) nearestOrAncestor(i int) int {
	cur := t.nodes[i].Parent
	for cur != noParent {
		if t.nodes[cur].Kind == Or {
			return cur
		}
		cur = t.nodes[cur].Parent
	}
	return -1
}

// isSolved reports whether node i's subtree carries a usable solution:
// a SOLUTION leaf, an AND/UNSET node whose children are all solved, or an
// OR node with at least one solved child. Mirrors Node.is_solved in the
// reference implementation.
func (t *Tree) isSolved(i int) bool {
	n := t.nodes[i]
	if n.Kind == Solution {
		return true
	}
	if len(n.Children) == 0 {
		return false
	}
	switch n.Kind {
	case Or:
		for _, c := range n.Children {
			if t.isSolved(c) {
				return true
			}
		}
		return false
	default: // And, Unset
		for _, c := range n.Children {
			if !t.isSolved(c) {
				return false
			}
		}
		return true
	}
}

// isFailed reports whether node i's subtree has no remaining path to a
// solution: a FAILURE leaf, an OR node whose children are all failed, or
// an AND/UNSET node with at least one failed child. Mirrors
// Node.is_failed in the reference implementation.
func (t *Tree) isFailed(i int) bool {
	n := t.nodes[i]
	if n.Kind == Failure {
		return true
	}
	if len(n.Children) == 0 {
		return false
	}
	switch n.Kind {
	case Or:
		for _, c := range n.Children {
			if !t.isFailed(c) {
				return false
			}
		}
		return true
	default:
		for _, c := range n.Children {
			if t.isFailed(c) {
				return true
			}
		}
		return false
	}
}

// isFinished reports whether node i's subtree needs no further work.
func (t *Tree) isFinished(i int) bool {
	return t.isSolved(i) || t.isFailed(i)
}

// unsolvedChildren returns the children of node i whose subtrees are not
// yet finished (neither solved nor failed).
func (t *Tree) unsolvedChildren(i int) []int {
	var out []int
	for _, c := range t.nodes[i].Children {
		if !t.isFinished(c) {
			out = append(out, c)
		}
	}
	return out
}
