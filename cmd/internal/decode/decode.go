package decode

import (
	"fmt"

	"github.com/nathanhack/dnastore/dna"
	"github.com/nathanhack/dnastore/storage"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Repetitions uint
	Raw         bool
	Verbose     bool
)

var DecodeRun = func(cmd *cobra.Command, args []string) {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	encoded, err := storage.Load(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	logrus.Debugf("loaded %v positions (%v)", len(encoded.Positions), encoded.Positions.Bases())

	if Raw {
		// externally produced sequences carry no recorded length
		bits, err := dna.DecodeFull(encoded.Positions)
		if err != nil {
			fmt.Println("unable to decode: ", err)
			return
		}
		fmt.Println(bits)
		return
	}

	bits, err := storage.Decode(*encoded, int(Repetitions))
	if err != nil {
		fmt.Println("unable to decode: ", err)
		return
	}
	fmt.Println(bits)
}
