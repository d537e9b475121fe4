// Package mdtag encodes and decodes the SAM MD tag: a compact text form
// classifying every reference position an aligned read covers as a match,
// a mismatch, or a deletion.
//
// A Tag can be built two ways: Parse decodes MD text anchored at an alignment
// start, and New derives the same classification by reconciling a read against
// its reference under a CIGAR-shaped operation list. Either way the Tag is
// immutable, serializes to a unique canonical string, and can reconstruct the
// reference sequence the read was aligned against from the read alone.
package mdtag
