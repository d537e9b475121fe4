// tag.go
package mdtag

import "sort"

// Span is a half-open run [Start,End) of reference coordinates at which the
// read base equals the reference base.
type Span struct {
	Start, End int64
}

// Tag is the decoded form of an MD tag: every reference coordinate from the
// alignment start to End() is classified as exactly one of match, mismatch,
// or deletion. Mismatches and deletions record the reference's base, which is
// what makes Reference reconstruction possible.
//
// A Tag is immutable once built and safe for concurrent use.
type Tag struct {
	start      int64
	matches    []Span // sorted, non-overlapping
	mismatches map[int64]byte
	deletions  map[int64]byte
	text       string // canonical serialization, fixed at construction
}

// newTag assumes ownership of its arguments; matches must be sorted and
// non-overlapping, and the three classifications pairwise disjoint.
func newTag(start int64, matches []Span, mismatches, deletions map[int64]byte) *Tag {
	t := &Tag{
		start:      start,
		matches:    matches,
		mismatches: mismatches,
		deletions:  deletions,
	}
	t.text = t.serialize()
	return t
}

// Start returns the reference coordinate at which the described region begins.
func (t *Tag) Start() int64 { return t.start }

// IsEmpty reports whether the tag records no alignment content at all.
func (t *Tag) IsEmpty() bool {
	return len(t.matches) == 0 && len(t.mismatches) == 0 && len(t.deletions) == 0
}

// End returns the last classified reference coordinate, inclusive.
// ok is false for the empty tag, which covers no coordinates.
func (t *Tag) End() (end int64, ok bool) {
	if t.IsEmpty() {
		return 0, false
	}
	if n := len(t.matches); n > 0 {
		end, ok = t.matches[n-1].End-1, true
	}
	for pos := range t.mismatches {
		if !ok || pos > end {
			end, ok = pos, true
		}
	}
	for pos := range t.deletions {
		if !ok || pos > end {
			end, ok = pos, true
		}
	}
	return end, ok
}

// IsMatch reports whether pos falls inside a match run.
func (t *Tag) IsMatch(pos int64) bool {
	i := sort.Search(len(t.matches), func(i int) bool { return t.matches[i].End > pos })
	return i < len(t.matches) && t.matches[i].Start <= pos
}

// MismatchAt returns the reference base recorded as mismatched at pos.
func (t *Tag) MismatchAt(pos int64) (byte, bool) {
	b, ok := t.mismatches[pos]
	return b, ok
}

// DeletionAt returns the reference base recorded as deleted at pos.
func (t *Tag) DeletionAt(pos int64) (byte, bool) {
	b, ok := t.deletions[pos]
	return b, ok
}

// Matches returns a copy of the match runs in coordinate order.
func (t *Tag) Matches() []Span {
	out := make([]Span, len(t.matches))
	copy(out, t.matches)
	return out
}

// Mismatches returns a copy of the mismatch map (coordinate → reference base).
func (t *Tag) Mismatches() map[int64]byte { return copyBases(t.mismatches) }

// Deletions returns a copy of the deletion map (coordinate → reference base).
func (t *Tag) Deletions() map[int64]byte { return copyBases(t.deletions) }

func copyBases(m map[int64]byte) map[int64]byte {
	out := make(map[int64]byte, len(m))
	for pos, b := range m {
		out[pos] = b
	}
	return out
}

// Equal reports whether two tags describe the same region identically.
// Equality is over (start, canonical text): how the match runs were
// decomposed internally does not matter.
func (t *Tag) Equal(o *Tag) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.start == o.start && t.text == o.text
}
