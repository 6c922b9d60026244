package benchmarking

import (
	"math"
	"math/rand"

	"github.com/nathanhack/dnastore/repetition"
	mat2 "gonum.org/v1/gonum/mat"
)

// RandomBits creates a random bit string of length len.
func RandomBits(len int) string {
	buf := make([]byte, len)
	for i := 0; i < len; i++ {
		buf[i] = '0' + byte(rand.Intn(2))
	}
	return string(buf)
}

// FlipBits randomly flips min(numberOfBitsToFlip,len(bits)) distinct bits.
func FlipBits(bits string, numberOfBitsToFlip int) string {
	buf := []byte(bits)

	flip := make(map[int]bool)
	for len(flip) < numberOfBitsToFlip && len(flip) < len(buf) {
		flip[rand.Intn(len(buf))] = true
	}

	for i := range flip {
		buf[i] ^= 1 // '0' and '1' differ in the low bit
	}
	return string(buf)
}

// FlipBitsProbability flips each bit independently with probability p,
// simulating a binary symmetric channel with crossover probability p.
func FlipBitsProbability(bits string, p float64) string {
	buf := []byte(bits)
	for i := range buf {
		if rand.Float64() < p {
			buf[i] ^= 1
		}
	}
	return string(buf)
}

// EraseBits creates a copy of the codeword and randomly sets
// numberOfBitsToErase of them to Erased.
func EraseBits(codeword []repetition.ErasureBit, numberOfBitsToErase int) []repetition.ErasureBit {
	output := make([]repetition.ErasureBit, len(codeword))
	copy(output, codeword)

	erase := make(map[int]bool)
	for len(erase) < numberOfBitsToErase && len(erase) < len(codeword) {
		erase[rand.Intn(len(codeword))] = true
	}

	for i := range erase {
		output[i] = repetition.Erased
	}
	return output
}

// EraseBitsProbability erases each symbol independently with probability p,
// simulating a binary erasure channel.
func EraseBitsProbability(codeword []repetition.ErasureBit, p float64) []repetition.ErasureBit {
	output := make([]repetition.ErasureBit, len(codeword))
	copy(output, codeword)
	for i := range output {
		if rand.Float64() < p {
			output[i] = repetition.Erased
		}
	}
	return output
}

// ModulateBPSK maps a bit string to a BPSK vector: '0'→+1, '1'→-1.
func ModulateBPSK(bits string) mat2.Vector {
	result := mat2.NewVecDense(len(bits), nil)
	for i := 0; i < len(bits); i++ {
		if bits[i] == '1' {
			result.SetVec(i, -1)
		} else {
			result.SetVec(i, 1)
		}
	}
	return result
}

// RandomNoiseBPSK creates a randomized version of the bpsk vector using the E_b/N_0 passed in
func RandomNoiseBPSK(bpsk mat2.Vector, E_bPerN_0 float64) mat2.Vector {
	//using  σ^2 = N_0/2 and E_b=1
	// we get  σ = sqrt(1/(2*E_bPerN_0))
	σ := math.Sqrt(1 / (2 * E_bPerN_0))
	result := mat2.NewVecDense(bpsk.Len(), nil)
	for i := 0; i < bpsk.Len(); i++ {
		result.SetVec(i, rand.NormFloat64()*σ)
	}
	result.AddVec(result, bpsk)
	return result
}

// HardDecision demodulates a BPSK vector back to bits by sign.
func HardDecision(bpsk mat2.Vector) string {
	buf := make([]byte, bpsk.Len())
	for i := 0; i < bpsk.Len(); i++ {
		if bpsk.AtVec(i) < 0 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}
