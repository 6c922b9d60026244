package benchmarking

import (
	"context"
	"fmt"

	"github.com/nathanhack/dnastore/repetition"
)

func ExampleBenchmarkBSC() {
	createMessage := func(trial int) string {
		return "101"
	}

	encode := func(message string) (codeword string) {
		codeword, _ = repetition.Encode(message, 3)
		return codeword
	}

	channel := func(originalCodeword string) (erroredCodeword string) {
		//the repetition code fixes one flipped bit per group, one flip total is always recovered
		return FlipBits(originalCodeword, 1)
	}

	decode := func(channelInducedCodeword string) (message string) {
		message, _ = repetition.Decode(channelInducedCodeword, 3)
		return message
	}

	metrics := func(originalMessage, originalCodeword, channelInducedCodeword, decodedMessage string) (percentChannelBitErrors, percentMessageBitErrors float64) {
		return BitErrorRate(originalCodeword, channelInducedCodeword),
			BitErrorRate(originalMessage, decodedMessage)
	}

	checkpoint := func(updatedStats Stats) {}

	stats := BenchmarkBSC(context.Background(), 1, 1, createMessage, encode, channel, decode, metrics, checkpoint, false)

	fmt.Println("Bit Error Probability :", stats)
	//Output:
	// Bit Error Probability : {Channel:0.11(+/-0.00), Message:0.00(+/-0.00)}
}

func ExampleBenchmarkBSC_bpsk() {
	createMessage := func(trial int) string {
		return "101"
	}

	encode := func(message string) (codeword string) {
		codeword, _ = repetition.Encode(message, 3)
		return codeword
	}

	channel := func(originalCodeword string) (erroredCodeword string) {
		//at E_b/N_0 == 100 the hard decision essentially never flips a bit
		return HardDecision(RandomNoiseBPSK(ModulateBPSK(originalCodeword), 100))
	}

	decode := func(channelInducedCodeword string) (message string) {
		message, _ = repetition.Decode(channelInducedCodeword, 3)
		return message
	}

	metrics := func(originalMessage, originalCodeword, channelInducedCodeword, decodedMessage string) (percentChannelBitErrors, percentMessageBitErrors float64) {
		return BitErrorRate(originalCodeword, channelInducedCodeword),
			BitErrorRate(originalMessage, decodedMessage)
	}

	stats := BenchmarkBSC(context.Background(), 1, 1, createMessage, encode, channel, decode, metrics, nil, false)

	fmt.Println("Bit Error Probability :", stats)
	//Output:
	// Bit Error Probability : {Channel:0.00(+/-0.00), Message:0.00(+/-0.00)}
}

func ExampleBenchmarkBEC() {
	createMessage := func(trial int) string {
		return "101"
	}

	encode := func(message string) (codeword []repetition.ErasureBit) {
		bits, _ := repetition.Encode(message, 3)
		codeword, _ = repetition.BitsToErasures(bits)
		return codeword
	}

	channel := func(originalCodeword []repetition.ErasureBit) (erroredCodeword []repetition.ErasureBit) {
		//with no flips the vote over the surviving symbols is always right,
		//so two erasures out of nine never reach the message
		return EraseBits(originalCodeword, 2)
	}

	decode := func(channelInducedCodeword []repetition.ErasureBit) (message []repetition.ErasureBit) {
		message, _ = repetition.DecodeErasures(channelInducedCodeword, 3)
		return message
	}

	metrics := func(originalMessage string, channelInducedCodeword, decodedMessage []repetition.ErasureBit) (percentChannelErasures, percentMessageErasures float64) {
		return ErasureRate(channelInducedCodeword), ErasureRate(decodedMessage)
	}

	stats := BenchmarkBEC(context.Background(), 1, 1, createMessage, encode, channel, decode, metrics, nil, false)

	fmt.Println("Erasure Probability :", stats)
	//Output:
	// Erasure Probability : {Channel:0.22(+/-0.00), Message:0.00(+/-0.00)}
}
