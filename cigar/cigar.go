// cigar/cigar.go
package cigar

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is a SAM alignment operation letter.
type Kind byte

const (
	Match     Kind = 'M' // alignment match (sequence match or mismatch)
	Insertion Kind = 'I' // insertion to the reference
	Deletion  Kind = 'D' // deletion from the reference
	Skip      Kind = 'N' // skipped region from the reference
	SoftClip  Kind = 'S' // clipped bases present in the read
	HardClip  Kind = 'H' // clipped bases absent from the read
	Padding   Kind = 'P' // silent deletion from padded reference
	Equal     Kind = '=' // sequence match
	Diff      Kind = 'X' // sequence mismatch
)

// ConsumesRead reports whether the operation advances through read bases.
func (k Kind) ConsumesRead() bool {
	switch k {
	case Match, Insertion, SoftClip, Equal, Diff:
		return true
	default:
		return false
	}
}

// ConsumesReference reports whether the operation advances through reference bases.
func (k Kind) ConsumesReference() bool {
	switch k {
	case Match, Deletion, Skip, Equal, Diff:
		return true
	default:
		return false
	}
}

func (k Kind) valid() bool {
	switch k {
	case Match, Insertion, Deletion, Skip, SoftClip, HardClip, Padding, Equal, Diff:
		return true
	default:
		return false
	}
}

// Op is a single length-counted alignment operation.
type Op struct {
	Kind Kind
	Len  int
}

func (o Op) String() string { return strconv.Itoa(o.Len) + string(byte(o.Kind)) }

// Ops is an ordered alignment-shape descriptor.
type Ops []Op

// String renders the descriptor in SAM text form, "*" when empty.
func (c Ops) String() string {
	if len(c) == 0 {
		return "*"
	}
	var b strings.Builder
	for _, op := range c {
		b.WriteString(op.String())
	}
	return b.String()
}

// Lengths returns the number of reference and read bases the descriptor covers.
func (c Ops) Lengths() (ref, read int) {
	for _, op := range c {
		if op.Kind.ConsumesReference() {
			ref += op.Len
		}
		if op.Kind.ConsumesRead() {
			read += op.Len
		}
	}
	return ref, read
}

// Parse decodes SAM CIGAR text like "5M2D3M". "" and "*" decode to nil.
func Parse(s string) (Ops, error) {
	if s == "" || s == "*" {
		return nil, nil
	}
	var out Ops
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j == i {
			return nil, fmt.Errorf("cigar %q: missing length before offset %d", s, i)
		}
		if j == len(s) {
			return nil, fmt.Errorf("cigar %q: length %s with no operation", s, s[i:j])
		}
		n, err := strconv.Atoi(s[i:j])
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("cigar %q: bad length %s", s, s[i:j])
		}
		k := Kind(s[j])
		if !k.valid() {
			return nil, fmt.Errorf("cigar %q: unknown operation %q", s, s[j])
		}
		out = append(out, Op{Kind: k, Len: n})
		i = j + 1
	}
	return out, nil
}
