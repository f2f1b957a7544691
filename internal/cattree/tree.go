// Package cattree stores values under dotted category names
// where a category without a value of its own
// inherits the value of its nearest parent.
//
//	t.Set("comment", X)
//	t.Set("comment.preproc", Y)
//	t.Lookup("comment.single")       // == X, from "comment"
//	t.Lookup("comment.preproc.file") // == Y, from "comment.preproc"
//	t.Lookup("keyword")              // not found
//
// This is how highlighting engines resolve styles
// for categories that a style does not mention explicitly.
package cattree

import (
	"sort"
	"strings"
)

const _sep = '.'

// Root is the top of a category tree.
// The zero value is an empty tree.
type Root[T any] struct {
	root node[T]
}

// Set stores a value for the given category.
// Descendants without their own value inherit it.
// A previous value for the same category is replaced.
func (r *Root[T]) Set(category string, v T) {
	r.root.Set(category, &v)
}

// Lookup retrieves the value for a category,
// inheriting from the nearest parent if the category has no value.
//
// from is the category that supplied the value.
// ok is false if neither the category nor any of its parents has a value.
func (r *Root[T]) Lookup(category string) (v T, from string, ok bool) {
	var (
		found *T
		path  []string
		n     = &r.root
	)
	for _, seg := range segments(category) {
		n = n.children[seg]
		if n == nil {
			break
		}
		path = append(path, seg)
		if n.value != nil {
			found = n.value
			from = strings.Join(path, string(_sep))
		}
	}

	if found == nil {
		return v, "", false
	}
	return *found, from, true
}

// Snapshot is a hierarchical view of values in the tree.
type Snapshot[T any] struct {
	// Value stored for this category,
	// or nil if it has no value of its own.
	Value *T

	// Category is the full dotted name of this node.
	Category string

	// Children are the specializations of this category,
	// sorted by name.
	Children []Snapshot[T]
}

// Snapshot returns the top-level categories of the tree
// and all their descendants.
func (r *Root[T]) Snapshot() []Snapshot[T] {
	return r.root.Snapshot(nil).Children
}

type node[T any] struct {
	value    *T
	children map[string]*node[T]
}

func (n *node[T]) Set(category string, v *T) {
	for _, seg := range segments(category) {
		if n.children == nil {
			n.children = make(map[string]*node[T])
		}
		c, ok := n.children[seg]
		if !ok {
			c = new(node[T])
			n.children[seg] = c
		}
		n = c
	}
	n.value = v
}

func (n *node[T]) Snapshot(path []string) Snapshot[T] {
	var children []Snapshot[T]
	if len(n.children) > 0 {
		names := make([]string, 0, len(n.children))
		for name := range n.children {
			names = append(names, name)
		}
		sort.Strings(names)

		children = make([]Snapshot[T], len(names))
		for i, name := range names {
			children[i] = n.children[name].Snapshot(append(path, name))
		}
	}

	return Snapshot[T]{
		Value:    n.value,
		Category: strings.Join(path, string(_sep)),
		Children: children,
	}
}

// segments splits a category into its non-empty parts.
func segments(category string) []string {
	return strings.FieldsFunc(category, func(r rune) bool {
		return r == _sep
	})
}
