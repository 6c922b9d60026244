package repetition

import (
	"github.com/nathanhack/dnastore/bitstring"
	mat "github.com/nathanhack/sparsemat"
)

// Generator returns the 1×r generator matrix of the [r,1] repetition code
// (the all-ones row vector).
func Generator(repetitions int) mat.SparseMat {
	if repetitions < 1 {
		panic(RepetitionsError(repetitions).Error())
	}
	G := mat.CSRMat(1, repetitions)
	for j := 0; j < repetitions; j++ {
		G.Set(0, j, 1)
	}
	return G
}

// ParityCheck returns the (r-1)×r parity check matrix of the [r,1]
// repetition code. Row i encodes the constraint x_0 + x_{i+1} = 0, so a
// group has zero syndrome exactly when all of its symbols agree.
func ParityCheck(repetitions int) mat.SparseMat {
	if repetitions < 2 {
		panic("repetition parity check requires >=2 repetitions")
	}
	H := mat.CSRMat(repetitions-1, repetitions)
	for i := 0; i < repetitions-1; i++ {
		H.Set(i, 0, 1)
		H.Set(i, i+1, 1)
	}
	return H
}

// GroupSyndrome computes H·g for a single group of '0'/'1' characters.
// The group length must equal the column count of H.
func GroupSyndrome(H mat.SparseMat, group string) mat.SparseVector {
	rows, cols := H.Dims()
	if len(group) != cols {
		panic("group length must equal the parity check column count")
	}
	g := mat.CSRVec(cols)
	for i := 0; i < len(group); i++ {
		if group[i] == '1' {
			g.Set(i, 1)
		}
	}
	syndrome := mat.CSRVec(rows)
	syndrome.MatMul(H, g)
	return syndrome
}

// IsCodeword returns true iff encoded has a whole number of groups and every
// group satisfies the parity check, i.e. encoded is a valid output of Encode
// for some input. A repetition count of 1 makes every binary string a
// codeword.
func IsCodeword(encoded string, repetitions int) bool {
	if repetitions < 1 {
		return false
	}
	if !bitstring.Valid(encoded) {
		return false
	}
	if len(encoded)%repetitions != 0 {
		return false
	}
	if repetitions == 1 {
		return true
	}

	H := ParityCheck(repetitions)
	for i := 0; i < len(encoded); i += repetitions {
		if GroupSyndrome(H, encoded[i:i+repetitions]).HammingWeight() != 0 {
			return false
		}
	}
	return true
}
