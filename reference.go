// reference.go
package mdtag

import (
	"strings"

	"mdtag/cigar"
	"mdtag/dna"
)

// Reference reconstructs the reference bases the read was aligned against,
// covering exactly the reference span the operation list consumes, starting
// at the tag's start coordinate.
//
// Inside an aligned run every position must be classified: a recorded
// mismatch contributes the stored reference base, a match echoes the read
// base, and anything else means the tag does not belong to this read and
// shape, which fails with a ConsistencyError. Deleted positions contribute
// their stored bases directly.
func (t *Tag) Reference(read string, ops cigar.Ops) (string, error) {
	read = dna.Normalize(read)

	var b strings.Builder
	readOff := 0
	pos := t.start

	for _, op := range ops {
		switch {
		case op.Kind == cigar.Deletion:
			for k := 0; k < op.Len; k++ {
				base, ok := t.deletions[pos]
				if !ok {
					return "", &ConsistencyError{Pos: pos, Msg: "no deleted base recorded"}
				}
				b.WriteByte(base)
				pos++
			}

		case op.Kind.ConsumesRead() && op.Kind.ConsumesReference():
			for k := 0; k < op.Len; k++ {
				if base, ok := t.mismatches[pos]; ok {
					b.WriteByte(base)
				} else if t.IsMatch(pos) {
					if readOff >= len(read) {
						return "", &ConsistencyError{Pos: pos, Msg: "read ends inside an aligned run"}
					}
					b.WriteByte(read[readOff])
				} else {
					return "", &ConsistencyError{Pos: pos, Msg: "aligned position is neither match nor mismatch"}
				}
				readOff++
				pos++
			}

		case op.Kind.ConsumesReference():
			return "", &UnsupportedOpError{Kind: op.Kind}

		case op.Kind.ConsumesRead():
			readOff += op.Len
		}
	}
	return b.String(), nil
}
