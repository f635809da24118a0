package ast

import (
	"fmt"

	"github.com/corvid-lang/corvid/internal/lexer"
)

// Node represents any AST node. The catalogue of concrete variants is closed:
// the unexported base method keeps implementations inside this package, which
// makes visitor dispatch and traversal exhaustively checkable.
type Node interface {
	// Kind returns the immutable variant discriminator.
	Kind() Kind

	// Span returns the node's source span. If the node was built without
	// one, the nearest ancestor span is used instead; the zero span is
	// returned for a detached node with no location anywhere above it.
	Span() lexer.Span

	// SetSpan assigns the node's span. Assigning the zero span is caller
	// misuse and fails with ErrInvalidArgument.
	SetSpan(span lexer.Span) error

	// EndSpan returns the independently tracked end span, meaningful
	// mainly for block-like nodes.
	EndSpan() lexer.Span

	// SetEndSpan assigns the end span, with the same zero-span rule as
	// SetSpan.
	SetEndSpan(span lexer.Span) error

	// Parent returns the enclosing node, or nil for a root. The reference
	// is for navigation only; ownership flows strictly parent to child.
	Parent() Node

	// Synthetic reports whether the node was fabricated by the compiler.
	Synthetic() bool

	// SetSynthetic marks the node as compiler-fabricated.
	SetSynthetic(synthetic bool)

	// Doc returns the documentation text attached by the builder.
	Doc() string

	// SetDoc attaches documentation text.
	SetDoc(doc string)

	// Annotate inserts value under key; a present key fails with a
	// DuplicateAnnotationError.
	Annotate(key, value any) error

	// AnnotateKey is Annotate(key, key), for marker annotations.
	AnnotateKey(key any) error

	// Annotation returns the value stored under key, if any.
	Annotation(key any) (any, bool)

	// ContainsAnnotation reports whether key is present.
	ContainsAnnotation(key any) bool

	// RemoveAnnotation deletes key; removing an absent key is a no-op.
	RemoveAnnotation(key any)

	// HasAnnotations reports whether the store is non-empty.
	HasAnnotations() bool

	// Entity returns the opaque semantic-analysis binding, or nil.
	Entity() any

	// SetEntity stores the semantic-analysis binding; nil clears it.
	SetEntity(entity any)

	// ClearSemanticBindings resets the annotation store and entity slot.
	ClearSemanticBindings()

	// Ancestor returns the nearest ancestor of the given kind, or nil.
	Ancestor(kind Kind) Node

	// AncestorWithin is Ancestor bounded to maxDepth parent hops; a zero
	// or negative maxDepth always yields nil.
	AncestorWithin(kind Kind, maxDepth int) Node

	// Accept dispatches to the visitor callback matching this variant.
	Accept(v Visitor)

	// Matches reports structural equivalence with other, ignoring spans,
	// documentation, the synthetic flag, annotations, and entity bindings.
	Matches(other Node) bool

	// Clone returns an independent deep copy of this node and, for
	// composite nodes, of its children. The copy is detached: its parent
	// is nil. Annotations and the entity binding are carried over into an
	// independent store; use CleanClone to strip them.
	Clone() Node

	base() *NodeBase
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Decl represents a top-level declaration.
type Decl interface {
	Node
	declNode()
}

// TypeExpr represents a type annotation expression.
type TypeExpr interface {
	Node
	typeNode()
}

// NodeBase carries the state shared by every node variant. Concrete nodes
// embed it by value; a NodeBase on its own is not a Node.
type NodeBase struct {
	span    lexer.Span
	endSpan lexer.Span
	parent  Node

	synthetic bool
	doc       string

	annotations map[any]any
	entity      any
}

func (b *NodeBase) base() *NodeBase { return b }

// Span returns the node's own span if set, falling back to the nearest
// ancestor carrying one. The fallback is a pure read; it never mutates the
// node, so repeated reads stay stable even while ancestors gain spans.
func (b *NodeBase) Span() lexer.Span {
	if b.span.IsValid() {
		return b.span
	}
	for p := b.parent; p != nil; p = p.base().parent {
		if s := p.base().span; s.IsValid() {
			return s
		}
	}
	return lexer.Span{}
}

// SetSpan updates the node span. The zero span is rejected: erasing location
// information is always a programming error in the calling pass.
func (b *NodeBase) SetSpan(span lexer.Span) error {
	if !span.IsValid() {
		return fmt.Errorf("set span: empty span: %w", ErrInvalidArgument)
	}
	b.span = span
	return nil
}

// EndSpan returns the end span, or the zero span when unset.
func (b *NodeBase) EndSpan() lexer.Span { return b.endSpan }

// SetEndSpan updates the end span, with the same zero-span rule as SetSpan.
func (b *NodeBase) SetEndSpan(span lexer.Span) error {
	if !span.IsValid() {
		return fmt.Errorf("set end span: empty span: %w", ErrInvalidArgument)
	}
	b.endSpan = span
	return nil
}

// Parent returns the enclosing node, or nil for a root.
func (b *NodeBase) Parent() Node { return b.parent }

// Synthetic reports whether the node was fabricated by the compiler rather
// than parsed from source.
func (b *NodeBase) Synthetic() bool { return b.synthetic }

// SetSynthetic marks the node as compiler-fabricated.
func (b *NodeBase) SetSynthetic(synthetic bool) { b.synthetic = synthetic }

// Doc returns the documentation text attached by the builder, if any.
func (b *NodeBase) Doc() string { return b.doc }

// SetDoc attaches documentation text to the node.
func (b *NodeBase) SetDoc(doc string) { b.doc = doc }

// cloneBase returns a detached copy of the base: same span, end span,
// synthetic flag and documentation, an independent annotation store with the
// same content, and no parent.
func (b *NodeBase) cloneBase() NodeBase {
	c := NodeBase{
		span:      b.span,
		endSpan:   b.endSpan,
		synthetic: b.synthetic,
		doc:       b.doc,
		entity:    b.entity,
	}
	if len(b.annotations) > 0 {
		c.annotations = make(map[any]any, len(b.annotations))
		for k, v := range b.annotations {
			c.annotations[k] = v
		}
	}
	return c
}

// adopt links child under parent. The parent back-reference is set exactly
// once, by whichever component structurally attaches the child: node
// constructors during building and the rewrite engine when it splices in a
// clone. A child built without a span inherits the parent's resolved span at
// attach time, so the inheritance is an explicit idempotent step rather than
// a side effect of reading.
func adopt(parent, child Node) {
	if child == nil {
		return
	}
	cb := child.base()
	cb.parent = parent
	if !cb.span.IsValid() {
		if s := parent.Span(); s.IsValid() {
			cb.span = s
		}
	}
}

// CleanClone returns a deep copy of n with all annotations and entity
// bindings stripped throughout the copied subtree.
func CleanClone(n Node) Node {
	c := n.Clone()
	Walk(c, func(m Node) bool {
		m.base().ClearSemanticBindings()
		return true
	})
	return c
}
