package dna

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nathanhack/dnastore/bitstring"
)

// ChunkBits is the number of bits consumed per position: 2 for the base and
// 2 for the methylation flag.
const ChunkBits = 4

// ErrEmptySequence indicates a decode was requested with nothing to decode.
var ErrEmptySequence = errors.New("empty position sequence")

// InvalidChunkLengthError indicates a chunk whose length is not ChunkBits.
type InvalidChunkLengthError int

func (i InvalidChunkLengthError) Error() string {
	return fmt.Sprintf("chunk length must be %v, found %v", ChunkBits, int(i))
}

// InvalidLengthError indicates an original length outside the range a
// sequence can reproduce.
type InvalidLengthError struct {
	Length   int
	Capacity int
}

func (i InvalidLengthError) Error() string {
	return fmt.Sprintf("original length %v outside [0,%v]", i.Length, i.Capacity)
}

// PositionFromChunk maps one 4-bit chunk to a position. Bits 0-1 select the
// base, bits 2-3 collapse to the methylation flag: methylated unless both
// are zero. The collapse is lossy; "01", "10" and "11" are indistinguishable
// afterwards.
func PositionFromChunk(chunk string) (Position, error) {
	if len(chunk) != ChunkBits {
		return Position{}, InvalidChunkLengthError(len(chunk))
	}
	if err := bitstring.Validate(chunk); err != nil {
		return Position{}, err
	}

	base, err := BaseFromBits(chunk[:2])
	if err != nil {
		return Position{}, err
	}

	return Position{
		Base:          base,
		Modifications: ModificationState{Methylated: chunk[2:4] != "00"},
		Backbone:      Standard,
		Structure:     DefaultStructure,
	}, nil
}

// chunkFromPosition is the canonical inverse of PositionFromChunk. The base
// bits invert exactly; the methylation flag reconstructs as "01" when set
// (one canonical choice among the three patterns that set it) and "00"
// otherwise.
func chunkFromPosition(pos Position) (string, error) {
	baseBits, err := pos.Base.Bits()
	if err != nil {
		return "", err
	}
	if pos.Modifications.Methylated {
		return baseBits + "01", nil
	}
	return baseBits + "00", nil
}

// Encode maps bits onto a position sequence, 4 bits per position, and
// returns the pre-padding bit length alongside it. A final chunk shorter
// than 4 bits is right-padded with '0'. Decode needs the returned length to
// strip those pad bits, so callers must carry it with the sequence; nothing
// is retained here.
func Encode(bits string) (Sequence, int, error) {
	if err := bitstring.Validate(bits); err != nil {
		return nil, 0, err
	}

	originalLength := len(bits)
	seq := make(Sequence, 0, (len(bits)+ChunkBits-1)/ChunkBits)
	for i := 0; i < len(bits); i += ChunkBits {
		chunk := bits[i:min(i+ChunkBits, len(bits))]
		if len(chunk) < ChunkBits {
			chunk = chunk + strings.Repeat("0", ChunkBits-len(chunk))
		}

		pos, err := PositionFromChunk(chunk)
		if err != nil {
			return nil, 0, err
		}
		seq = append(seq, pos)
	}
	return seq, originalLength, nil
}

// Decode reconstructs a bit string from seq and truncates it to
// originalLength, the pre-padding length returned by Encode. Base bits
// round-trip exactly; methylation bits come back as the canonical "01"/"00",
// so chunks originally encoded with "10" or "11" decode to a different chunk
// even though the flag itself round-trips.
func Decode(seq Sequence, originalLength int) (string, error) {
	// an empty sequence with a zero recorded length is an encoded empty input
	if len(seq) == 0 && originalLength == 0 {
		return "", nil
	}

	full, err := DecodeFull(seq)
	if err != nil {
		return "", err
	}
	if originalLength < 0 || originalLength > len(full) {
		return "", InvalidLengthError{Length: originalLength, Capacity: len(full)}
	}
	return full[:originalLength], nil
}

// DecodeFull reconstructs the whole padded-length bit string. It is the
// decode path for sequences supplied directly by a collaborator, where no
// recorded original length exists.
func DecodeFull(seq Sequence) (string, error) {
	if len(seq) == 0 {
		return "", ErrEmptySequence
	}

	buf := strings.Builder{}
	buf.Grow(len(seq) * ChunkBits)
	for _, pos := range seq {
		chunk, err := chunkFromPosition(pos)
		if err != nil {
			return "", err
		}
		buf.WriteString(chunk)
	}
	return buf.String(), nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
