package cmd

import (
	"github.com/nathanhack/dnastore/cmd/internal/decode"
	"github.com/nathanhack/dnastore/cmd/internal/demo"
	"github.com/nathanhack/dnastore/cmd/internal/encode"
	"github.com/nathanhack/dnastore/repetition"

	"github.com/spf13/cobra"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:     "encode BITSTRING OUTPUT_JSON",
	Aliases: []string{"e"},
	Short:   "Encodes a bit string into a DNA position sequence",
	Long: `Encodes a bit string into a DNA position sequence: the bits are protected
with a repetition code and mapped 4 bits per position (2 for the base, 2
collapsed into the methylation flag), then saved as JSON for later decoding.`,
	Args: cobra.ExactArgs(2),
	Run:  encode.EncodeRun,
}

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:     "decode ENCODED_JSON",
	Aliases: []string{"d"},
	Short:   "Decodes a previously encoded DNA position sequence",
	Long: `Decodes a DNA position sequence saved by encode back to the original bit
string. With --raw the repetition decode and pad truncation are skipped and
the full reconstructed bit string is printed, which is the right mode for
sequences produced outside this tool.`,
	Args: cobra.ExactArgs(1),
	Run:  decode.DecodeRun,
}

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walks the full pipeline on example data",
	Long:  `Walks example data through repetition encode, DNA encode, DNA decode and repetition decode, printing each stage.`,
	Run:   demo.DemoRun,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().UintVarP(&encode.Repetitions, "repetitions", "r", repetition.DefaultRepetitions, "the number of times each bit is repeated by the error correction layer")
	encodeCmd.Flags().BoolVarP(&encode.Verbose, "verbose", "v", false, "enable verbose info")

	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().UintVarP(&decode.Repetitions, "repetitions", "r", repetition.DefaultRepetitions, "the number of times each bit was repeated by the error correction layer")
	decodeCmd.Flags().BoolVar(&decode.Raw, "raw", false, "print the full reconstructed bit string without truncation or repetition decoding")
	decodeCmd.Flags().BoolVarP(&decode.Verbose, "verbose", "v", false, "enable verbose info")

	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().StringVarP(&demo.Data, "data", "d", "10110010", "the bit string to walk through the pipeline")
	demoCmd.Flags().UintVarP(&demo.Repetitions, "repetitions", "r", repetition.DefaultRepetitions, "the number of times each bit is repeated by the error correction layer")
}
