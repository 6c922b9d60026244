package dna

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
)

func TestBaseRoundTrip(t *testing.T) {
	for _, bits := range []string{"00", "01", "10", "11"} {
		base, err := BaseFromBits(bits)
		if err != nil {
			t.Fatalf("expected no error found: %v", err)
		}
		actual, err := base.Bits()
		if err != nil {
			t.Fatalf("expected no error found: %v", err)
		}
		if actual != bits {
			t.Fatalf("expected %v but found %v", bits, actual)
		}
	}
}

func TestBaseFromBitsErrors(t *testing.T) {
	for _, bits := range []string{"", "0", "000", "0a"} {
		if _, err := BaseFromBits(bits); err == nil {
			t.Fatalf("expected an error for %q", bits)
		}
	}
}

func TestPositionFromChunk(t *testing.T) {
	tests := []struct {
		chunk      string
		base       Base
		methylated bool
	}{
		{"0000", A, false},
		{"0001", A, true},
		{"0010", A, true},
		{"0011", A, true},
		{"0100", C, false},
		{"1000", G, false},
		{"1100", T, false},
		{"1111", T, true},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			pos, err := PositionFromChunk(test.chunk)
			if err != nil {
				t.Fatalf("expected no error found: %v", err)
			}
			if pos.Base != test.base {
				t.Fatalf("expected base %v but found %v", test.base, pos.Base)
			}
			if pos.Modifications.Methylated != test.methylated {
				t.Fatalf("expected methylated=%v", test.methylated)
			}
			if pos.Modifications.Hydroxymethylated || pos.Modifications.Acetylated || pos.Modifications.Formylated {
				t.Fatalf("expected only the methylation flag to be set")
			}
			if pos.Backbone != Standard {
				t.Fatalf("expected standard backbone but found %v", pos.Backbone)
			}
		})
	}
}

func TestPositionFromChunkErrors(t *testing.T) {
	tests := []struct {
		chunk string
	}{
		{""},
		{"001"},
		{"00110"},
		{"0a00"},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if _, err := PositionFromChunk(test.chunk); err == nil {
				t.Fatalf("expected an error for %q", test.chunk)
			}
		})
	}
}

func TestMethylationFlagRoundTrip(t *testing.T) {
	// the flag is (mod bits != 00); re-encoding the decoded canonical chunk keeps the flag
	for i := 0; i < 16; i++ {
		chunk := ""
		for j := 3; j >= 0; j-- {
			chunk += strconv.Itoa((i >> j) & 1)
		}

		pos, err := PositionFromChunk(chunk)
		if err != nil {
			t.Fatalf("expected no error found: %v", err)
		}
		if pos.Modifications.Methylated != (chunk[2:4] != "00") {
			t.Fatalf("expected methylated=%v for %v", chunk[2:4] != "00", chunk)
		}

		canonical, err := chunkFromPosition(pos)
		if err != nil {
			t.Fatalf("expected no error found: %v", err)
		}
		again, err := PositionFromChunk(canonical)
		if err != nil {
			t.Fatalf("expected no error found: %v", err)
		}
		if again.Modifications.Methylated != pos.Modifications.Methylated {
			t.Fatalf("expected the methylation flag to survive re-encoding for %v", chunk)
		}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		bits           string
		bases          string
		methylated     []bool
		originalLength int
	}{
		{"0000", "A", []bool{false}, 4},
		{"0001", "A", []bool{true}, 4},
		{"00010001", "AA", []bool{true, true}, 8},
		{"000101", "AC", []bool{true, false}, 6}, // last chunk pads to 0100
		{"11", "T", []bool{false}, 2},
		{"", "", []bool{}, 0},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			seq, originalLength, err := Encode(test.bits)
			if err != nil {
				t.Fatalf("expected no error found: %v", err)
			}
			if originalLength != test.originalLength {
				t.Fatalf("expected original length %v but found %v", test.originalLength, originalLength)
			}
			if seq.Bases() != test.bases {
				t.Fatalf("expected bases %v but found %v", test.bases, seq.Bases())
			}

			methylated := make([]bool, 0, len(seq))
			for _, pos := range seq {
				methylated = append(methylated, pos.Modifications.Methylated)
			}
			if !reflect.DeepEqual(methylated, test.methylated) {
				t.Fatalf("expected methylation %v but found %v", test.methylated, methylated)
			}
		})
	}
}

func TestEncodeMalformed(t *testing.T) {
	if _, _, err := Encode("00x1"); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestPaddingTruncationRoundTrip(t *testing.T) {
	// exact for inputs whose modification bits are the canonical 00/01 patterns
	tests := []string{
		"0001",
		"00010001",
		"11",
		"110",
		"1101",
		"0100010",
		"000100010",
	}
	for i, bits := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			seq, originalLength, err := Encode(bits)
			if err != nil {
				t.Fatalf("expected no error found: %v", err)
			}

			decoded, err := Decode(seq, originalLength)
			if err != nil {
				t.Fatalf("expected no error found: %v", err)
			}
			if decoded != bits {
				t.Fatalf("expected %v but found %v", bits, decoded)
			}
		})
	}
}

func TestLossyModificationCollapse(t *testing.T) {
	// 10 and 11 modification bits decode to the canonical 01 pattern
	tests := []struct {
		bits     string
		expected string
	}{
		{"0010", "0001"},
		{"0011", "0001"},
		{"1110", "1101"},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			seq, originalLength, err := Encode(test.bits)
			if err != nil {
				t.Fatalf("expected no error found: %v", err)
			}

			decoded, err := Decode(seq, originalLength)
			if err != nil {
				t.Fatalf("expected no error found: %v", err)
			}
			if decoded != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, decoded)
			}
		})
	}
}

func TestDecodeFull(t *testing.T) {
	seq, _, err := Encode("110")
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}

	// no recorded length means the full padded output comes back
	decoded, err := DecodeFull(seq)
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}
	if decoded != "1100" {
		t.Fatalf("expected 1100 but found %v", decoded)
	}
}

func TestDecodeErrors(t *testing.T) {
	seq, _, err := Encode("0001")
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}

	if _, err := Decode(Sequence{}, 3); !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("expected ErrEmptySequence found: %v", err)
	}
	if decoded, err := Decode(Sequence{}, 0); err != nil || decoded != "" {
		t.Fatalf("expected empty decode for an encoded empty input, found %q, %v", decoded, err)
	}
	if _, err := DecodeFull(nil); !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("expected ErrEmptySequence found: %v", err)
	}

	var invalidLength InvalidLengthError
	if _, err := Decode(seq, 5); !errors.As(err, &invalidLength) {
		t.Fatalf("expected InvalidLengthError found: %v", err)
	}
	if _, err := Decode(seq, -1); !errors.As(err, &invalidLength) {
		t.Fatalf("expected InvalidLengthError found: %v", err)
	}

	var unknownBase UnknownBaseError
	bad := Sequence{{Base: 'X'}}
	if _, err := DecodeFull(bad); !errors.As(err, &unknownBase) {
		t.Fatalf("expected UnknownBaseError found: %v", err)
	}
}

func TestPositionString(t *testing.T) {
	pos, err := PositionFromChunk("0001")
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}
	if pos.String() != "A[Me]" {
		t.Fatalf("expected A[Me] but found %v", pos.String())
	}

	pos.Modifications.Methylated = false
	if pos.String() != "A[unmod]" {
		t.Fatalf("expected A[unmod] but found %v", pos.String())
	}
}
