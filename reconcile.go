// reconcile.go
package mdtag

import (
	"mdtag/cigar"
	"mdtag/dna"
)

// New derives a Tag by comparing read against ref position by position under
// the alignment shape ops, anchored at reference coordinate start. ref is the
// reference restricted to the aligned region: its first base sits at start.
//
// Aligned operations (M, =, X) consume both sequences in lockstep; deletions
// consume only the reference, recording its bases; read-only operations
// (insertions, soft clips) skip read bases. Any other reference-consuming
// operation fails with an UnsupportedOpError.
func New(read, ref string, ops cigar.Ops, start int64) (*Tag, error) {
	read = dna.Normalize(read)
	ref = dna.Normalize(ref)

	var (
		matches    []Span
		mismatches = make(map[int64]byte)
		deletions  = make(map[int64]byte)
	)
	readOff, refOff := 0, 0
	pos := start

	for _, op := range ops {
		switch {
		case op.Kind == cigar.Deletion:
			for k := 0; k < op.Len; k++ {
				if refOff >= len(ref) {
					return nil, &ConsistencyError{Pos: pos, Msg: "reference ends inside a deletion"}
				}
				deletions[pos] = ref[refOff]
				refOff++
				pos++
			}

		case op.Kind.ConsumesRead() && op.Kind.ConsumesReference():
			matchOpen := false
			var matchStart int64
			for k := 0; k < op.Len; k++ {
				if refOff >= len(ref) {
					return nil, &ConsistencyError{Pos: pos, Msg: "reference ends inside an aligned run"}
				}
				if readOff >= len(read) {
					return nil, &ConsistencyError{Pos: pos, Msg: "read ends inside an aligned run"}
				}
				if read[readOff] == ref[refOff] {
					if !matchOpen {
						matchOpen = true
						matchStart = pos
					}
				} else {
					if matchOpen {
						matches = appendSpan(matches, Span{Start: matchStart, End: pos})
						matchOpen = false
					}
					mismatches[pos] = ref[refOff]
				}
				readOff++
				refOff++
				pos++
			}
			if matchOpen {
				matches = appendSpan(matches, Span{Start: matchStart, End: pos})
			}

		case op.Kind.ConsumesReference():
			return nil, &UnsupportedOpError{Kind: op.Kind}

		case op.Kind.ConsumesRead():
			readOff += op.Len
		}
	}
	return newTag(start, matches, mismatches, deletions), nil
}

// Move rebuilds a tag for a read whose alignment shape changed but whose
// start coordinate did not: the reference is reconstructed from prev over the
// old shape, then reconciled against the new one. An alignment that moved to
// a different start needs New with an explicitly supplied reference.
func Move(prev *Tag, read string, oldOps, newOps cigar.Ops) (*Tag, error) {
	ref, err := prev.Reference(read, oldOps)
	if err != nil {
		return nil, err
	}
	return New(read, ref, newOps, prev.start)
}
