/*
Package trie provides a generic prefix tree for membership and prefix lookup
over sequences of any comparable element type.

A Trie[T] stores sequences given as iter.Seq[T] and answers two queries through
Search: whether a sequence was inserted exactly, and whether it is a prefix of
something that was. Words wraps a Trie[rune] for strings with optional
normalisation and case folding.
*/
package trie
