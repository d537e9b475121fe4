// parse_test.go
package mdtag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAllMatches(t *testing.T) {
	tag, err := Parse("100", 0)
	require.NoError(t, err)
	assert.Equal(t, []Span{{0, 100}}, tag.Matches())
	assert.Empty(t, tag.Mismatches())
	assert.Empty(t, tag.Deletions())
	assert.Equal(t, "100", tag.String())

	end, ok := tag.End()
	require.True(t, ok)
	assert.Equal(t, int64(99), end)
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "0"} {
		tag, err := Parse(in, 5)
		require.NoError(t, err, "input %q", in)
		assert.True(t, tag.IsEmpty())
		assert.Equal(t, "0", tag.String())
		_, ok := tag.End()
		assert.False(t, ok, "empty tag has no end coordinate")
	}
}

func TestParseMismatch(t *testing.T) {
	tag, err := Parse("10A5", 0)
	require.NoError(t, err)
	assert.Equal(t, []Span{{0, 10}, {11, 16}}, tag.Matches())
	assert.Equal(t, map[int64]byte{10: 'A'}, tag.Mismatches())
	assert.Equal(t, "10A5", tag.String())
}

func TestParseDeletion(t *testing.T) {
	tag, err := Parse("5^AC6", 0)
	require.NoError(t, err)
	assert.Equal(t, []Span{{0, 5}, {7, 13}}, tag.Matches())
	assert.Equal(t, map[int64]byte{5: 'A', 6: 'C'}, tag.Deletions())
	assert.Equal(t, "5^AC6", tag.String())
}

func TestParseCaseInsensitive(t *testing.T) {
	lower, err := Parse("10a5", 0)
	require.NoError(t, err)
	upper, err := Parse("10A5", 0)
	require.NoError(t, err)
	assert.Equal(t, "10A5", lower.String())
	assert.True(t, lower.Equal(upper))
}

// Non-canonical but grammatical inputs decode fine and re-serialize in
// canonical form.
func TestParseCanonicalizes(t *testing.T) {
	tests := []struct{ in, want string }{
		{"05", "5"},
		{"2AT3", "2A0T3"}, // adjacent mismatches gain a separating zero
		{"0A0C0", "0A0C0"},
		{"5^A0T3", "5^A0T3"},
		{"5^A0^C3", "5^AC3"}, // deletion runs split only by a zero rejoin
	}
	for _, tc := range tests {
		tag, err := Parse(tc.in, 0)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, tag.String(), "input %q", tc.in)
	}
}

func TestParseRoundTrip(t *testing.T) {
	canonical := []string{
		"0", "100", "10A5", "5^AC6", "0A75", "2A0T3", "12^T0G4",
		"1N3", "0C0", "7G19A21", "0^AC5", "2A0^T3", "2^T0A3",
	}
	for _, s := range canonical {
		tag, err := Parse(s, 42)
		require.NoError(t, err, "input %q", s)
		assert.Equal(t, s, tag.String(), "round trip of %q", s)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in     string
		offset int
	}{
		{"A5", 0},    // missing leading match length
		{"^A5", 0},   // missing leading match length
		{"5A", 2},    // missing trailing match length
		{"5^AC", 4},  // missing trailing match length
		{"5^", 1},    // deletion marker with no bases
		{"5^2", 1},   // deletion marker with no bases
		{"5*5", 1},   // unrecognized character
		{"10A5Z", 4}, // Z is not an IUPAC code
	}
	for _, tc := range tests {
		_, err := Parse(tc.in, 0)
		require.Error(t, err, "input %q", tc.in)
		var serr *SyntaxError
		require.True(t, errors.As(err, &serr), "input %q: want *SyntaxError, got %v", tc.in, err)
		assert.Equal(t, tc.offset, serr.Offset, "input %q", tc.in)
	}
}

func TestParseInvariants(t *testing.T) {
	for _, s := range []string{"100", "10A5", "5^AC6", "2A0T3", "12^T0G4"} {
		tag, err := Parse(s, 1000)
		require.NoError(t, err)
		checkClassification(t, tag)
	}
}

// checkClassification asserts the disjointness and coverage invariants: every
// coordinate in [start, end] is classified exactly once.
func checkClassification(t *testing.T, tag *Tag) {
	t.Helper()
	end, ok := tag.End()
	require.True(t, ok)
	for pos := tag.Start(); pos <= end; pos++ {
		n := 0
		if tag.IsMatch(pos) {
			n++
		}
		if _, ok := tag.MismatchAt(pos); ok {
			n++
		}
		if _, ok := tag.DeletionAt(pos); ok {
			n++
		}
		require.Equal(t, 1, n, "tag %q: position %d classified %d times", tag, pos, n)
	}
}
