// Package repetition implements the [r,1] repetition code over bit strings:
// every bit is emitted r times and recovered by majority vote. It can correct
// up to floor((r-1)/2) bit errors per group without detection of uncorrected
// errors.
package repetition

import (
	"fmt"
	"strings"

	"github.com/nathanhack/dnastore/bitstring"
)

// DefaultRepetitions is the group size used by the storage pipeline.
const DefaultRepetitions = 3

// RepetitionsError indicates an unusable repetition count (must be >= 1).
type RepetitionsError int

func (r RepetitionsError) Error() string {
	return fmt.Sprintf("repetitions must be >= 1, found %v", int(r))
}

// Encode emits each bit of bits repetitions times, in order. Surrounding
// whitespace is trimmed before encoding. Non-binary characters are rejected
// with a bitstring.MalformedError.
func Encode(bits string, repetitions int) (string, error) {
	if repetitions < 1 {
		return "", RepetitionsError(repetitions)
	}
	bits = strings.TrimSpace(bits)
	if err := bitstring.Validate(bits); err != nil {
		return "", err
	}

	buf := strings.Builder{}
	buf.Grow(len(bits) * repetitions)
	for i := 0; i < len(bits); i++ {
		for j := 0; j < repetitions; j++ {
			buf.WriteByte(bits[i])
		}
	}
	return buf.String(), nil
}

// Decode partitions bits into groups of repetitions and majority-votes each
// group: a group decodes to '1' only when ones strictly outnumber zeros, so
// ties on even repetition counts decode to '0'. A trailing group shorter than
// repetitions is dropped, not voted on. Non-binary characters are rejected
// with a bitstring.MalformedError.
func Decode(bits string, repetitions int) (string, error) {
	if repetitions < 1 {
		return "", RepetitionsError(repetitions)
	}
	if err := bitstring.Validate(bits); err != nil {
		return "", err
	}

	groups := len(bits) / repetitions
	buf := strings.Builder{}
	buf.Grow(groups)
	for g := 0; g < groups; g++ {
		group := bits[g*repetitions : (g+1)*repetitions]
		ones := strings.Count(group, "1")
		if ones > len(group)-ones {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}
	return buf.String(), nil
}

// ValidateBits returns true iff every character of bits is '0' or '1'.
func ValidateBits(bits string) bool {
	return bitstring.Valid(bits)
}

// ValidateEncoding returns true iff encoded is exactly original with every
// bit repeated repetitions times. Each group is checked as a codeword of the
// [r,1] code (zero syndrome) whose leading symbol matches the original bit.
func ValidateEncoding(original, encoded string, repetitions int) bool {
	if repetitions < 1 {
		return false
	}
	if len(encoded) != len(original)*repetitions {
		return false
	}
	if !bitstring.Valid(original) || !bitstring.Valid(encoded) {
		return false
	}
	if repetitions == 1 {
		return encoded == original
	}

	H := ParityCheck(repetitions)
	for i := 0; i < len(original); i++ {
		group := encoded[i*repetitions : (i+1)*repetitions]
		if group[0] != original[i] {
			return false
		}
		if GroupSyndrome(H, group).HammingWeight() != 0 {
			return false
		}
	}
	return true
}
