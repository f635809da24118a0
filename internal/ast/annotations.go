package ast

import "reflect"

// The annotation store is a per-node sparse mapping populated incrementally
// by analysis passes and consumed by later ones without re-walking the tree.
// It has two access modes over the same map: arbitrary keys via Annotate and
// friends, and a typed single-slot mode via SetTag/GetTag where the key is
// the type identity of the stored value.

// Annotate inserts value under key. Insertion is insert-only: a key that is
// already present fails with a DuplicateAnnotationError, signalling a
// double-annotating pass. Callers wanting overwrite-or-skip semantics must
// check ContainsAnnotation first.
func (b *NodeBase) Annotate(key, value any) error {
	if b.annotations == nil {
		b.annotations = make(map[any]any)
	}
	if _, ok := b.annotations[key]; ok {
		return &DuplicateAnnotationError{Key: key}
	}
	b.annotations[key] = value
	return nil
}

// AnnotateKey is shorthand for Annotate(key, key), for marker annotations
// where presence is the whole payload.
func (b *NodeBase) AnnotateKey(key any) error {
	return b.Annotate(key, key)
}

// Annotation returns the value stored under key, if any.
func (b *NodeBase) Annotation(key any) (any, bool) {
	v, ok := b.annotations[key]
	return v, ok
}

// ContainsAnnotation reports whether key is present.
func (b *NodeBase) ContainsAnnotation(key any) bool {
	_, ok := b.annotations[key]
	return ok
}

// RemoveAnnotation deletes key from the store. Removing an absent key is a
// no-op, not an error.
func (b *NodeBase) RemoveAnnotation(key any) {
	delete(b.annotations, key)
}

// HasAnnotations reports whether the store holds any entry, in either
// access mode.
func (b *NodeBase) HasAnnotations() bool {
	return len(b.annotations) > 0
}

// Entity returns the opaque semantic-analysis binding, or nil when the node
// has not been resolved.
func (b *NodeBase) Entity() any { return b.entity }

// SetEntity stores the semantic-analysis binding. The core neither
// interprets nor validates it. Passing nil clears the slot.
func (b *NodeBase) SetEntity(entity any) { b.entity = entity }

// ClearSemanticBindings resets the annotation store and the entity slot
// together, invalidating all stale analysis results on this node.
func (b *NodeBase) ClearSemanticBindings() {
	b.annotations = nil
	b.entity = nil
}

// SetTag stores value in the node's typed slot for T, replacing any previous
// value of that type. Each node holds at most one value per distinct type.
func SetTag[T any](n Node, value T) {
	b := n.base()
	if b.annotations == nil {
		b.annotations = make(map[any]any)
	}
	b.annotations[reflect.TypeFor[T]()] = value
}

// GetTag returns the value stored in the node's typed slot for T.
func GetTag[T any](n Node) (T, bool) {
	if v, ok := n.base().annotations[reflect.TypeFor[T]()]; ok {
		return v.(T), true
	}
	var zero T
	return zero, false
}

// RemoveTag clears the node's typed slot for T.
func RemoveTag[T any](n Node) {
	delete(n.base().annotations, reflect.TypeFor[T]())
}
