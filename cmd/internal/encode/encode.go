package encode

import (
	"fmt"

	"github.com/nathanhack/dnastore/storage"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Repetitions uint
	Verbose     bool
)

var EncodeRun = func(cmd *cobra.Command, args []string) {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	encoded, err := storage.Encode(args[0], int(Repetitions))
	if err != nil {
		fmt.Println("unable to encode: ", err)
		return
	}

	logrus.Debugf("input bits: %v", args[0])
	logrus.Debugf("repetition coded length: %v", encoded.OriginalLength)
	for i, pos := range encoded.Positions {
		logrus.Debugf("position %v: %v", i, pos)
	}

	err = storage.Save(args[1], encoded)
	if err != nil {
		fmt.Println("unable to write file: ", err)
		return
	}

	logrus.Infof("encoded %v bits into %v positions (%v)", len(args[0]), len(encoded.Positions), encoded.Positions.Bases())
}
