// errors.go
package mdtag

import (
	"fmt"

	"mdtag/cigar"
)

// SyntaxError reports MD text that does not follow the tag grammar.
type SyntaxError struct {
	Input  string // the (normalized) text being parsed
	Offset int    // byte offset of the offending token
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid MD tag %q: %s (offset %d)", e.Input, e.Msg, e.Offset)
}

// UnsupportedOpError reports an alignment operation that consumes reference
// bases but is neither an aligned region nor a deletion. Skipping it would
// corrupt the coordinate bookkeeping, so it is a hard failure.
type UnsupportedOpError struct {
	Kind cigar.Kind
}

func (e *UnsupportedOpError) Error() string {
	return fmt.Sprintf("unsupported reference-consuming operation %q", byte(e.Kind))
}

// ConsistencyError reports a tag that does not agree with the read and
// operation list it is applied to.
type ConsistencyError struct {
	Pos int64 // reference coordinate at which the disagreement surfaced
	Msg string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("MD tag inconsistent at position %d: %s", e.Pos, e.Msg)
}
