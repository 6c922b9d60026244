// Package bitstring has helpers shared by the codec layers for working with
// strings of '0'/'1' characters.
package bitstring

import "fmt"

// MalformedError reports the first non-binary character found in a bit string.
type MalformedError struct {
	Offset int
	Byte   byte
}

func (m MalformedError) Error() string {
	return fmt.Sprintf("malformed bit string: byte %q at offset %v, expected '0' or '1'", m.Byte, m.Offset)
}

// Validate returns nil if every character of bits is '0' or '1',
// otherwise a MalformedError for the first offending character.
func Validate(bits string) error {
	for i := 0; i < len(bits); i++ {
		if bits[i] != '0' && bits[i] != '1' {
			return MalformedError{Offset: i, Byte: bits[i]}
		}
	}
	return nil
}

// Valid is the boolean form of Validate.
func Valid(bits string) bool {
	return Validate(bits) == nil
}
