package trie

import (
	"iter"
	"slices"
)

// Trie is a prefix tree over sequences of comparable elements. Each node owns
// the subtrees reachable through its children and records whether an inserted
// sequence ends exactly at it.
//
// The zero value is an empty trie ready for use. A Trie is not safe for
// concurrent use; callers sharing one across goroutines must lock around it.
type Trie[T comparable] struct {
	// children maps the next element of a sequence to its subtree.
	children map[T]*Trie[T]
	// isEnd is true if some inserted sequence terminates at this node.
	isEnd bool
}

// New creates a new empty trie.
func New[T comparable]() *Trie[T] {
	return new(Trie[T])
}

// FromSequence creates a trie holding only seq.
func FromSequence[T comparable](seq iter.Seq[T]) *Trie[T] {
	t := New[T]()
	t.Insert(seq)
	return t
}

// FromSlice is FromSequence for a slice.
func FromSlice[T comparable](s []T) *Trie[T] {
	return FromSequence(slices.Values(s))
}

// Insert adds seq to the trie, creating any missing nodes along its path and
// marking the last one as the end of a sequence. seq is drained completely.
// An empty seq marks the root.
func (t *Trie[T]) Insert(seq iter.Seq[T]) {
	current := t
	for elem := range seq {
		child, ok := current.children[elem]
		if !ok {
			if current.children == nil {
				current.children = make(map[T]*Trie[T])
			}
			child = new(Trie[T])
			current.children[elem] = child
		}
		current = child
	}
	current.isEnd = true
}

// InsertSlice is Insert for a slice.
func (t *Trie[T]) InsertSlice(s []T) {
	t.Insert(slices.Values(s))
}

// Search reports whether seq is in the trie. With isPrefix set, seq only has to
// be a prefix of some inserted sequence and end markers are ignored; otherwise
// seq itself must have been inserted.
//
// Elements are pulled from seq until one has no matching edge, so the empty
// sequence is always found as a prefix.
func (t *Trie[T]) Search(seq iter.Seq[T], isPrefix bool) bool {
	current := t
	for elem := range seq {
		next, ok := current.children[elem]
		if !ok {
			return false
		}
		current = next
	}
	return current.isEnd || isPrefix
}

// SearchSlice is Search for a slice.
func (t *Trie[T]) SearchSlice(s []T, isPrefix bool) bool {
	return t.Search(slices.Values(s), isPrefix)
}

// Contains reports whether seq was inserted exactly.
func (t *Trie[T]) Contains(seq iter.Seq[T]) bool {
	return t.Search(seq, false)
}

// HasPrefix reports whether seq is a prefix of any inserted sequence.
func (t *Trie[T]) HasPrefix(seq iter.Seq[T]) bool {
	return t.Search(seq, true)
}
