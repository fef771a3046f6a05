package tree

import "iter"

// Predicate is a function type to match against nodes of a tree.
// test is the node under test, node is the node a search started from
// (nil for searches without a single origin).
type Predicate[T comparable] func(test *Node[T], node *Node[T]) (match bool, err error)

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (bool, error) {
		return true, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (bool, error) {
		return test.ChildCount() == 0, nil
	}
}

// Ancestors iterates over the ancestors of node, nearest first.
// The iteration does not include node itself.
func (node *Node[T]) Ancestors() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		if node == nil {
			return
		}
		for anc := node.parent; anc != nil; anc = anc.parent {
			if !yield(anc) {
				return
			}
		}
	}
}

// AncestorWith finds the nearest ancestor matching the given predicate.
// The search does not include the start node. A miss is not an error and
// returns nil.
func (node *Node[T]) AncestorWith(predicate Predicate[T]) (*Node[T], error) {
	if predicate == nil {
		return nil, ErrInvalidFilter
	}
	for anc := range node.Ancestors() {
		match, err := predicate(anc, node)
		if err != nil {
			return nil, err
		}
		if match {
			return anc, nil
		}
	}
	return nil, nil
}

// DescendentsWith finds descendents matching a predicate, in document order.
// The search does not include the start node. If the predicate returns an
// error, the search stops.
func (node *Node[T]) DescendentsWith(predicate Predicate[T]) ([]*Node[T], error) {
	if predicate == nil {
		return nil, ErrInvalidFilter
	}
	var selection []*Node[T]
	for n, depth := range node.Walk() {
		if depth == 0 {
			continue
		}
		match, err := predicate(n, node)
		if err != nil {
			return selection, err
		}
		if match {
			selection = append(selection, n)
		}
	}
	return selection, nil
}
