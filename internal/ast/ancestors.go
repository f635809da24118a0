package ast

import "iter"

// Ancestor walks the parent chain without bound and returns the first
// ancestor whose kind equals kind, or nil.
func (b *NodeBase) Ancestor(kind Kind) Node {
	for p := b.parent; p != nil; p = p.base().parent {
		if p.Kind() == kind {
			return p
		}
	}
	return nil
}

// AncestorWithin is Ancestor bounded to maxDepth parent hops. The depth must
// still be positive before an ancestor is examined, so maxDepth 0 always
// yields nil even when the immediate parent matches.
func (b *NodeBase) AncestorWithin(kind Kind, maxDepth int) Node {
	depth := maxDepth
	for p := b.parent; p != nil; p = p.base().parent {
		if depth <= 0 {
			return nil
		}
		depth--
		if p.Kind() == kind {
			return p
		}
	}
	return nil
}

// AncestorOf returns the nearest ancestor of n whose concrete type is T.
func AncestorOf[T Node](n Node) (T, bool) {
	for p := n.base().parent; p != nil; p = p.base().parent {
		if t, ok := p.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// RootAncestorOf returns the farthest ancestor of n whose concrete type is
// T: the last match found walking outward.
func RootAncestorOf[T Node](n Node) (T, bool) {
	var (
		found T
		ok    bool
	)
	for p := n.base().parent; p != nil; p = p.base().parent {
		if t, isT := p.(T); isT {
			found, ok = t, true
		}
	}
	return found, ok
}

// AncestorsOf returns a lazy, restartable sequence of the ancestors of n
// whose concrete type is T, ordered nearest to farthest.
func AncestorsOf[T Node](n Node) iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := n.base().parent; p != nil; p = p.base().parent {
			if t, ok := p.(T); ok {
				if !yield(t) {
					return
				}
			}
		}
	}
}
