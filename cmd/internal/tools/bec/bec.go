package bec

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/nathanhack/dnastore/benchmarking"
	"github.com/nathanhack/dnastore/cmd/internal/tools"
	"github.com/nathanhack/dnastore/repetition"
	"github.com/spf13/cobra"
)

var (
	Trials             uint
	ErasureProbability []float64
	MessageSize        uint
	Repetitions        uint
	Threads            uint
)

var BecRun = func(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println("requires RESULT_JSON")
		return
	}

	data, err := tools.LoadResults(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	if data == nil {
		data = &tools.SimulationStats{
			TypeInfo: typeInfo(),
			CodeInfo: tools.CodeInfo(int(Repetitions)),
			Stats:    make(map[float64]benchmarking.Stats),
		}
	}

	if data.TypeInfo != typeInfo() {
		fmt.Printf("results loaded do not match the same type expected %v but found %v\n", typeInfo(), data.TypeInfo)
		return
	}
	if data.CodeInfo != tools.CodeInfo(int(Repetitions)) {
		fmt.Printf("results loaded do not match the repetition code\n")
		return
	}

	// handle ctrl-C's to kill in a nice way
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sig := <-sigs
		fmt.Println()
		fmt.Println(sig)
		cancel()
	}()

	runSimulation(ctx, data, args[0])

	err = tools.SaveResults(args[0], data)
	if err != nil {
		fmt.Println(err)
	}
}

func typeInfo() string {
	return "BEC:github.com/nathanhack/dnastore/repetition"
}

func runSimulation(ctx context.Context, data *tools.SimulationStats, outputFilename string) {
	checkpointMux := sync.Mutex{}
	checkpointCount := 0

	repetitions := int(Repetitions)

	encode := func(message string) []repetition.ErasureBit {
		codeword, err := repetition.Encode(message, repetitions)
		if err != nil {
			panic(err)
		}
		symbols, err := repetition.BitsToErasures(codeword)
		if err != nil {
			panic(err)
		}
		return symbols
	}
	decode := func(channelInducedCodeword []repetition.ErasureBit) []repetition.ErasureBit {
		message, err := repetition.DecodeErasures(channelInducedCodeword, repetitions)
		if err != nil {
			panic(err)
		}
		return message
	}
	metrics := func(originalMessage string, channelInducedCodeword, decodedMessage []repetition.ErasureBit) (float64, float64) {
		return benchmarking.ErasureRate(channelInducedCodeword),
			benchmarking.ErasureRate(decodedMessage)
	}
	createMessage := func(trial int) string {
		return benchmarking.RandomBits(int(MessageSize))
	}

	numberOfThreads := int(Threads)
	if numberOfThreads == 0 {
		numberOfThreads = runtime.NumCPU()
	}

probabilityLoop:
	for _, p := range ErasureProbability {
		select {
		case <-ctx.Done():
			break probabilityLoop
		default:
		}

		fmt.Printf("erasure probability: %v\n", p)

		channel := func(codeword []repetition.ErasureBit) []repetition.ErasureBit {
			return benchmarking.EraseBitsProbability(codeword, p)
		}

		checkpoint := func(stats benchmarking.Stats) {
			checkpointMux.Lock()
			defer checkpointMux.Unlock()

			data.Stats[p] = stats
			checkpointCount++
			if checkpointCount%1000 == 0 {
				tools.SaveResults(outputFilename, data)
			}
		}

		data.Stats[p] = benchmarking.BenchmarkBECContinueStats(ctx,
			int(Trials), numberOfThreads,
			createMessage, encode, channel, decode, metrics,
			checkpoint, data.Stats[p], true)

		fmt.Printf("  %v\n", data.Stats[p])
	}
}
