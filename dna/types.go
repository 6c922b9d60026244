// Package dna maps corrected bit strings onto DNA positions: each 4-bit
// chunk becomes one position carrying a base (2 bits) and a methylation flag
// (a lossy collapse of the remaining 2 bits).
package dna

import (
	"fmt"
	"strings"
)

// Base is one of the four DNA bases.
type Base byte

const (
	A Base = 'A'
	C Base = 'C'
	G Base = 'G'
	T Base = 'T'
)

// UnknownBaseError indicates a base symbol outside A/C/G/T.
type UnknownBaseError string

func (u UnknownBaseError) Error() string {
	return fmt.Sprintf("unknown base symbol %q, expected A, C, G or T", string(u))
}

// BaseFromBits maps a 2-bit string to a base: 00→A, 01→C, 10→G, 11→T.
func BaseFromBits(bits string) (Base, error) {
	switch bits {
	case "00":
		return A, nil
	case "01":
		return C, nil
	case "10":
		return G, nil
	case "11":
		return T, nil
	}
	return 0, fmt.Errorf("base bits must be 2 binary digits, found %q", bits)
}

// Bits is the exact inverse of BaseFromBits.
func (b Base) Bits() (string, error) {
	switch b {
	case A:
		return "00", nil
	case C:
		return "01", nil
	case G:
		return "10", nil
	case T:
		return "11", nil
	}
	return "", UnknownBaseError(string(rune(b)))
}

// ParseBase converts a one-character base symbol string to a Base.
func ParseBase(s string) (Base, error) {
	switch s {
	case "A":
		return A, nil
	case "C":
		return C, nil
	case "G":
		return G, nil
	case "T":
		return T, nil
	}
	return 0, UnknownBaseError(s)
}

func (b Base) String() string {
	return string(rune(b))
}

// Backbone is descriptive metadata on a position; it plays no part in the
// bit mapping.
type Backbone string

const (
	Standard         Backbone = "standard"
	Phosphorothioate Backbone = "phosphorothioate"
	// boranophosphate existed in the lab notes but was never produced
)

// ModificationState holds the chemical modification flags of one position.
// The flags are independent booleans; only Methylated is driven by the
// codec, the rest are reserved for additional storage layers.
type ModificationState struct {
	Methylated        bool
	Hydroxymethylated bool
	Acetylated        bool
	Formylated        bool
}

// Position is one encoded unit: a base plus its modification state. Backbone
// and Structure are descriptive only and are not round-tripped by the codec.
type Position struct {
	Base          Base
	Modifications ModificationState
	Backbone      Backbone
	Structure     string // B-DNA, Z-DNA, or cruciform
}

// DefaultStructure is the structure assigned to codec-produced positions.
const DefaultStructure = "B-DNA"

func (p Position) String() string {
	mods := make([]string, 0, 4)
	if p.Modifications.Methylated {
		mods = append(mods, "Me")
	}
	if p.Modifications.Hydroxymethylated {
		mods = append(mods, "hMe")
	}
	if p.Modifications.Acetylated {
		mods = append(mods, "Ac")
	}
	if p.Modifications.Formylated {
		mods = append(mods, "fC")
	}
	if len(mods) == 0 {
		return fmt.Sprintf("%v[unmod]", p.Base)
	}
	return fmt.Sprintf("%v[%v]", p.Base, strings.Join(mods, "-"))
}

// Sequence is an ordered run of positions; the order is the only carrier of
// the original bit ordering.
type Sequence []Position

// Bases renders just the base symbols, e.g. "GACT".
func (s Sequence) Bases() string {
	buf := strings.Builder{}
	buf.Grow(len(s))
	for _, p := range s {
		buf.WriteByte(byte(p.Base))
	}
	return buf.String()
}
