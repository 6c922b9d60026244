// Package benchmarking runs channel simulations against bit-string codecs:
// random messages go through an encoder, a noisy channel and a decoder, and
// the surviving error rates are accumulated across trials.
package benchmarking

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/dnastore/repetition"
	"github.com/nathanhack/threadpool"
)

type Stats struct {
	ChannelBitError avgstd.AvgStd // fraction of codeword bits the channel corrupted
	MessageBitError avgstd.AvgStd // fraction of message bits still wrong after decode
}

func (s Stats) String() string {
	return fmt.Sprintf("{Channel:%0.02f(+/-%0.02f), Message:%0.02f(+/-%0.02f)}",
		s.ChannelBitError.Mean, math.Sqrt(s.ChannelBitError.SampledVariance()),
		s.MessageBitError.Mean, math.Sqrt(s.MessageBitError.SampledVariance()),
	)
}

type Checkpoints func(updatedStats Stats)

type MessageConstructor func(trial int) (message string)

// specific to BSC
type Encoder func(message string) (codeword string)
type Channel func(codeword string) (channelInducedCodeword string)
type Decoder func(channelInducedCodeword string) (message string)
type Metrics func(originalMessage, originalCodeword, channelInducedCodeword, decodedMessage string) (percentChannelBitErrors, percentMessageBitErrors float64)

// specific to BEC
type ErasureEncoder func(message string) (codeword []repetition.ErasureBit)
type ErasureChannel func(codeword []repetition.ErasureBit) (channelInducedCodeword []repetition.ErasureBit)
type ErasureDecoder func(channelInducedCodeword []repetition.ErasureBit) (message []repetition.ErasureBit)
type ErasureMetrics func(originalMessage string, channelInducedCodeword, decodedMessage []repetition.ErasureBit) (percentChannelErasures, percentMessageErasures float64)

func BenchmarkBSC(ctx context.Context,
	trials int, threads int,
	createMessage MessageConstructor,
	encode Encoder,
	channel Channel,
	decode Decoder,
	metrics Metrics,
	checkpoints Checkpoints,
	showProgress bool) Stats {
	return BenchmarkBSCContinueStats(ctx, trials, threads, createMessage, encode, channel, decode, metrics, checkpoints, Stats{}, showProgress)
}

func BenchmarkBSCContinueStats(ctx context.Context,
	trials int, threads int,
	createMessage MessageConstructor,
	encode Encoder,
	channel Channel,
	decode Decoder,
	metrics Metrics,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	trialsToRun := trials - previousStats.ChannelBitError.Count
	if trialsToRun <= 0 {
		return previousStats
	}

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(trialsToRun)
	}

	pool := threadpool.NewFixedSize(ctx, threads, trialsToRun)
	statsMux := sync.Mutex{}

	trial := func(i int) {
		if showProgress {
			bar.Increment()
		}
		message := createMessage(i)

		codeword := encode(message)

		// send through the channel to get channel induced errors
		channelInducedCodeword := channel(codeword)

		// majority vote recovers the message (if possible)
		decoded := decode(channelInducedCodeword)

		percentChannelBitErrors, percentMessageBitErrors := metrics(message, codeword, channelInducedCodeword, decoded)

		statsMux.Lock()
		previousStats.ChannelBitError.Update(percentChannelBitErrors)
		previousStats.MessageBitError.Update(percentMessageBitErrors)
		if checkpoints != nil {
			checkpoints(previousStats)
		}
		statsMux.Unlock()
	}

	for i := previousStats.ChannelBitError.Count; i < trials; i++ {
		tmp := i
		pool.Add(func() { trial(tmp) })
	}
	pool.Wait()
	if showProgress {
		bar.Finish()
	}
	return previousStats
}

func BenchmarkBEC(ctx context.Context,
	trials, threads int,
	createMessage MessageConstructor,
	encode ErasureEncoder,
	channel ErasureChannel,
	decode ErasureDecoder,
	metrics ErasureMetrics,
	checkpoints Checkpoints,
	showProgress bool) Stats {
	return BenchmarkBECContinueStats(ctx, trials, threads, createMessage, encode, channel, decode, metrics, checkpoints, Stats{}, showProgress)
}

func BenchmarkBECContinueStats(ctx context.Context,
	trials, threads int,
	createMessage MessageConstructor,
	encode ErasureEncoder,
	channel ErasureChannel,
	decode ErasureDecoder,
	metrics ErasureMetrics,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	trialsToRun := trials - previousStats.ChannelBitError.Count
	if trialsToRun <= 0 {
		return previousStats
	}

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(trialsToRun)
	}

	pool := threadpool.NewFixedSize(ctx, threads, trialsToRun)
	statsMux := sync.Mutex{}

	trial := func(i int) {
		if showProgress {
			bar.Increment()
		}
		message := createMessage(i)

		codeword := encode(message)

		channelInducedCodeword := channel(codeword)

		decoded := decode(channelInducedCodeword)

		percentChannelErasures, percentMessageErasures := metrics(message, channelInducedCodeword, decoded)

		statsMux.Lock()
		previousStats.ChannelBitError.Update(percentChannelErasures)
		previousStats.MessageBitError.Update(percentMessageErasures)
		if checkpoints != nil {
			checkpoints(previousStats)
		}
		statsMux.Unlock()
	}

	for i := previousStats.ChannelBitError.Count; i < trials; i++ {
		tmp := i
		pool.Add(func() { trial(tmp) })
	}
	pool.Wait()
	if showProgress {
		bar.Finish()
	}
	return previousStats
}

// BitErrorRate is the hamming distance between two equal length bit strings
// divided by their length.
func BitErrorRate(a, b string) float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("bit strings must have equal length: %v != %v", len(a), len(b)))
	}
	if len(a) == 0 {
		return 0
	}
	errs := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			errs++
		}
	}
	return float64(errs) / float64(len(a))
}

// ErasureRate is the fraction of symbols still erased.
func ErasureRate(symbols []repetition.ErasureBit) float64 {
	if len(symbols) == 0 {
		return 0
	}
	erased := 0
	for _, s := range symbols {
		if s == repetition.Erased {
			erased++
		}
	}
	return float64(erased) / float64(len(symbols))
}
