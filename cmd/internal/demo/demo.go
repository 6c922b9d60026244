package demo

import (
	"fmt"

	"github.com/nathanhack/dnastore/dna"
	"github.com/nathanhack/dnastore/repetition"
	"github.com/spf13/cobra"
)

var (
	Data        string
	Repetitions uint
)

var DemoRun = func(cmd *cobra.Command, args []string) {
	fmt.Println("DNA Storage Codec Demonstration")
	fmt.Println("===============================")
	fmt.Printf("\nOriginal data: %v\n", Data)

	corrected, err := repetition.Encode(Data, int(Repetitions))
	if err != nil {
		fmt.Println("unable to encode: ", err)
		return
	}
	fmt.Printf("Data with error correction: %v\n", corrected)

	seq, originalLength, err := dna.Encode(corrected)
	if err != nil {
		fmt.Println("unable to encode: ", err)
		return
	}

	fmt.Println("\nDNA storage representation:")
	for i, pos := range seq {
		fmt.Printf("Position %v: %v\n", i, pos)
	}

	decoded, err := dna.Decode(seq, originalLength)
	if err != nil {
		fmt.Println("unable to decode: ", err)
		return
	}

	final, err := repetition.Decode(decoded, int(Repetitions))
	if err != nil {
		fmt.Println("unable to decode: ", err)
		return
	}

	fmt.Printf("\nDecoded data: %v\n", final)
	fmt.Printf("Successful recovery: %v\n", final == Data)
}
