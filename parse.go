// parse.go
package mdtag

import (
	"strconv"

	"mdtag/dna"
)

// Parse decodes MD text anchored at reference coordinate start.
//
// The grammar alternates decimal match lengths with event blocks (a '^' plus
// deleted reference bases, or bare mismatched reference bases), beginning and
// ending with a match length, possibly the literal 0. Input is
// case-insensitive. The empty string and the bare literal "0" both decode to
// the empty tag.
func Parse(text string, start int64) (*Tag, error) {
	s := dna.Normalize(text)
	if s == "" || s == "0" {
		return newTag(start, nil, nil, nil), nil
	}

	var (
		matches    []Span
		mismatches = make(map[int64]byte)
		deletions  = make(map[int64]byte)
	)
	pos := start

	// Leading match run is mandatory.
	i, err := scanMatchRun(s, 0, &pos, &matches)
	if err != nil {
		return nil, err
	}

	for i < len(s) {
		if s[i] == '^' {
			i++
			j := i
			for i < len(s) && dna.IsBase(s[i]) {
				deletions[pos] = s[i]
				pos++
				i++
			}
			if i == j {
				return nil, &SyntaxError{Input: s, Offset: j - 1, Msg: "deletion marker '^' with no bases"}
			}
		} else if dna.IsBase(s[i]) {
			for i < len(s) && dna.IsBase(s[i]) {
				mismatches[pos] = s[i]
				pos++
				i++
			}
		} else {
			return nil, &SyntaxError{Input: s, Offset: i, Msg: "unrecognized character " + strconv.Quote(string(s[i]))}
		}

		// Every event block must be followed by a match run, even a bare 0.
		i, err = scanMatchRun(s, i, &pos, &matches)
		if err != nil {
			return nil, err
		}
	}
	return newTag(start, matches, mismatches, deletions), nil
}

// scanMatchRun consumes a mandatory decimal literal at offset i, advancing
// the coordinate cursor and recording a match span when the length is
// non-zero. It returns the offset just past the literal.
func scanMatchRun(s string, i int, pos *int64, matches *[]Span) (int, error) {
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		msg := "must begin with a match length"
		if i > 0 {
			msg = "event block not followed by a match length"
		}
		return 0, &SyntaxError{Input: s, Offset: i, Msg: msg}
	}
	n, err := strconv.ParseInt(s[i:j], 10, 64)
	if err != nil {
		return 0, &SyntaxError{Input: s, Offset: i, Msg: "match length " + s[i:j] + " out of range"}
	}
	if n > 0 {
		*matches = appendSpan(*matches, Span{Start: *pos, End: *pos + n})
		*pos += n
	}
	return j, nil
}

// appendSpan keeps the span list coalesced: a run starting where the previous
// one ended extends it instead of opening a new entry.
func appendSpan(spans []Span, s Span) []Span {
	if n := len(spans); n > 0 && spans[n-1].End == s.Start {
		spans[n-1].End = s.End
		return spans
	}
	return append(spans, s)
}
