// dna/dna_test.go
package dna

import (
	"strings"
	"testing"
)

func TestIsBase(t *testing.T) {
	for _, c := range []byte("ACGTRYSWKMBDHVNacgtn") {
		if !IsBase(c) {
			t.Errorf("IsBase(%q) = false, want true", c)
		}
	}
	for _, c := range []byte("QZ^123 .-") {
		if IsBase(c) {
			t.Errorf("IsBase(%q) = true, want false", c)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"acgt", "ACGT"},
		{" AC gt\n", "ACGT"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidate(t *testing.T) {
	if s, err := Validate("acgtryswkmbdhvn"); err != nil || s != "ACGTRYSWKMBDHVN" {
		t.Fatalf("Validate full alphabet: got %q, %v", s, err)
	}
	_, err := Validate("ACQT")
	if err == nil {
		t.Fatal("expected error for non-IUPAC base")
	}
	if !strings.Contains(err.Error(), "at 3") {
		t.Errorf("error should name the offending position: %v", err)
	}
}
