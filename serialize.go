// serialize.go
package mdtag

import (
	"strconv"
	"strings"
)

// String returns the canonical MD text for the tag, "0" when empty.
// The result is computed once at construction.
func (t *Tag) String() string { return t.text }

// serialize walks every coordinate in [start, end] and emits the alternating
// match-length / event grammar. Consecutive matched coordinates collapse into
// one decimal literal; consecutive deleted coordinates share one '^' marker;
// a zero literal separates adjacent events so the text always alternates.
func (t *Tag) serialize() string {
	if t.IsEmpty() {
		return "0"
	}
	end, _ := t.End()

	var b strings.Builder
	var streak int64
	inDeletion := false
	for pos := t.start; pos <= end; pos++ {
		switch {
		case t.deletions[pos] != 0:
			if !inDeletion {
				b.WriteString(strconv.FormatInt(streak, 10))
				b.WriteByte('^')
				streak = 0
				inDeletion = true
			}
			b.WriteByte(t.deletions[pos])
		case t.mismatches[pos] != 0:
			b.WriteString(strconv.FormatInt(streak, 10))
			b.WriteByte(t.mismatches[pos])
			streak = 0
			inDeletion = false
		default:
			streak++
			inDeletion = false
		}
	}
	b.WriteString(strconv.FormatInt(streak, 10))
	return b.String()
}
