package cmd

import (
	"github.com/nathanhack/dnastore/cmd/internal/tools/bec"
	"github.com/nathanhack/dnastore/cmd/internal/tools/bsc"
	"github.com/nathanhack/dnastore/cmd/internal/tools/chart"
	"github.com/nathanhack/dnastore/cmd/internal/tools/csv"
	"github.com/nathanhack/dnastore/repetition"

	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for the repetition code",
	Long:    `Tools for measuring and displaying how the repetition code performs over noisy channels`,
}

// toolsChansimCmd represents the chansim command
var toolsChansimCmd = &cobra.Command{
	Use:     "chansim",
	Aliases: []string{"cs", "c"},
	Short:   "Channel simulators",
	Long:    `Channel simulators for the repetition code`,
}

// toolsBscCmd represents the bsc command
var toolsBscCmd = &cobra.Command{
	Use:   "bsc RESULT_JSON",
	Short: "A binary symmetric channel simulator",
	Long:  `A binary symmetric channel simulator for the repetition code`,
	Run:   bsc.BscRun,
}

// toolsBecCmd represents the bec command
var toolsBecCmd = &cobra.Command{
	Use:   "bec RESULT_JSON",
	Short: "A binary erasure channel simulator",
	Long:  `A binary erasure channel simulator for the repetition code`,
	Run:   bec.BecRun,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:     "chart RESULTS_JSON...",
	Aliases: []string{"graph", "g"},
	Short:   "Creates a chart from simulation results",
	Long:    `Creates an HTML bar chart from one or more simulation result files`,
	Run:     chart.ChartRun,
}

// toolsCsvCmd represents the csv command
var toolsCsvCmd = &cobra.Command{
	Use:   "csv RESULTS_JSON...",
	Short: "Creates a CSV from simulation results",
	Long:  `Creates a CSV file from one or more simulation result files`,
	Run:   csv.CSVRun,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsChansimCmd)

	toolsChansimCmd.AddCommand(toolsBscCmd)
	toolsBscCmd.Flags().UintVarP(&bsc.Trials, "trials", "n", 1000, "the number of trials per probability")
	toolsBscCmd.Flags().Float64SliceVarP(&bsc.ErrorProbability, "probabilities", "p", []float64{0.01, 0.05, 0.1, 0.2}, "the crossover probabilities to simulate")
	toolsBscCmd.Flags().UintVarP(&bsc.MessageSize, "message", "m", 64, "the number of bits in each trial message")
	toolsBscCmd.Flags().UintVarP(&bsc.Repetitions, "repetitions", "r", repetition.DefaultRepetitions, "the number of times each bit is repeated")
	toolsBscCmd.Flags().UintVarP(&bsc.Threads, "threads", "t", 0, "the number of threads to use; note 0 means use the number of cpus")

	toolsChansimCmd.AddCommand(toolsBecCmd)
	toolsBecCmd.Flags().UintVarP(&bec.Trials, "trials", "n", 1000, "the number of trials per probability")
	toolsBecCmd.Flags().Float64SliceVarP(&bec.ErasureProbability, "probabilities", "p", []float64{0.01, 0.05, 0.1, 0.2}, "the erasure probabilities to simulate")
	toolsBecCmd.Flags().UintVarP(&bec.MessageSize, "message", "m", 64, "the number of bits in each trial message")
	toolsBecCmd.Flags().UintVarP(&bec.Repetitions, "repetitions", "r", repetition.DefaultRepetitions, "the number of times each bit is repeated")
	toolsBecCmd.Flags().UintVarP(&bec.Threads, "threads", "t", 0, "the number of threads to use; note 0 means use the number of cpus")

	toolsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "chart.html", "the output HTML file")

	toolsCmd.AddCommand(toolsCsvCmd)
	toolsCsvCmd.Flags().StringVarP(&csv.OutputFile, "output", "o", "results.csv", "the output CSV file")
	toolsCsvCmd.Flags().BoolVarP(&csv.ChannelError, "channel", "c", false, "export the channel error rate instead of the remaining message error rate")
}
