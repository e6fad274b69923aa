package trie

import (
	"iter"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Words is a string front end to a Trie of runes. Entries and queries are
// folded the same way before they reach the trie, so with normalisation on
// "Jurg" matches "Jürgen" and "Jürg" matches "Jurgen".
type Words struct {
	tree                      *Trie[rune]
	normalised, caseSensitive bool
}

// NewWords creates a new empty Words. By default normalisation is on and
// matching is case insensitive.
func NewWords() *Words {
	w := &Words{tree: New[rune]()}
	w.WithNormalisation()
	w.CaseInsensitive()
	return w
}

// WithNormalisation strips combining marks from entries and queries.
func (w *Words) WithNormalisation() *Words {
	w.normalised = true
	return w
}

// WithoutNormalisation compares entries and queries rune for rune.
func (w *Words) WithoutNormalisation() *Words {
	w.normalised = false
	return w
}

// CaseSensitive sets Words to use case sensitive matching.
func (w *Words) CaseSensitive() *Words {
	w.caseSensitive = true
	return w
}

// CaseInsensitive sets Words to use case insensitive matching.
func (w *Words) CaseInsensitive() *Words {
	w.caseSensitive = false
	return w
}

// Insert inserts strings into Words. The empty string is a valid entry.
func (w *Words) Insert(entries ...string) {
	for _, entry := range entries {
		w.tree.Insert(runeSeq(w.fold(entry)))
	}
}

// Search reports whether s was inserted, or with isPrefix set, whether it is a
// prefix of any entry.
func (w *Words) Search(s string, isPrefix bool) bool {
	return w.tree.Search(runeSeq(w.fold(s)), isPrefix)
}

// Contains reports whether s was inserted.
func (w *Words) Contains(s string) bool {
	return w.Search(s, false)
}

// HasPrefix reports whether s is a prefix of any entry.
func (w *Words) HasPrefix(s string) bool {
	return w.Search(s, true)
}

// fold applies the current normalisation and case settings to s. Settings are
// read on every call, so changing them does not rewrite stored entries.
func (w *Words) fold(s string) string {
	if w.normalised {
		transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		if normal, _, err := transform.String(transformer, s); err == nil {
			s = normal
		}
	}
	if !w.caseSensitive {
		s = strings.ToLower(s)
	}
	return s
}

// runeSeq yields the runes of s in order.
func runeSeq(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}
