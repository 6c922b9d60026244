package repetition

import "github.com/nathanhack/dnastore/bitstring"

// ErasureBit is a codeword symbol on a binary erasure channel.
type ErasureBit int

const (
	Zero ErasureBit = iota
	One
	Erased
)

func (e ErasureBit) String() string {
	switch e {
	case Zero:
		return "0"
	case One:
		return "1"
	case Erased:
		return "?"
	}
	return "!"
}

// BitsToErasures converts a bit string to erasure channel symbols.
func BitsToErasures(bits string) ([]ErasureBit, error) {
	symbols := make([]ErasureBit, len(bits))
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			symbols[i] = Zero
		case '1':
			symbols[i] = One
		default:
			return nil, bitstring.MalformedError{Offset: i, Byte: bits[i]}
		}
	}
	return symbols, nil
}

// ErasuresToBits converts symbols back to a bit string, rendering Erased as '?'.
func ErasuresToBits(symbols []ErasureBit) string {
	buf := make([]byte, len(symbols))
	for i, s := range symbols {
		buf[i] = s.String()[0]
	}
	return string(buf)
}

// DecodeErasures majority-votes each full group over its non-erased symbols;
// ties resolve to Zero. A group with every symbol erased decodes to Erased.
// A trailing partial group is dropped, matching Decode.
func DecodeErasures(symbols []ErasureBit, repetitions int) ([]ErasureBit, error) {
	if repetitions < 1 {
		return nil, RepetitionsError(repetitions)
	}

	groups := len(symbols) / repetitions
	message := make([]ErasureBit, groups)
	for g := 0; g < groups; g++ {
		ones, zeros := 0, 0
		for _, s := range symbols[g*repetitions : (g+1)*repetitions] {
			switch s {
			case One:
				ones++
			case Zero:
				zeros++
			}
		}
		switch {
		case ones == 0 && zeros == 0:
			message[g] = Erased
		case ones > zeros:
			message[g] = One
		default:
			message[g] = Zero
		}
	}
	return message, nil
}
