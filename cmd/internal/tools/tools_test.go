package tools

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/dnastore/benchmarking"
)

func TestSimulationStatsSaveLoad(t *testing.T) {
	data := &SimulationStats{
		TypeInfo: "BSC:github.com/nathanhack/dnastore/repetition",
		CodeInfo: CodeInfo(3),
		Stats: map[float64]benchmarking.Stats{
			0.01: {ChannelBitError: avgstd.AvgStd{Mean: 0.01, Count: 100}},
			0.1:  {ChannelBitError: avgstd.AvgStd{Mean: 0.1, Count: 100}},
		},
	}

	path := filepath.Join(t.TempDir(), "results.json")
	if err := SaveResults(path, data); err != nil {
		t.Fatalf("expected no error found: %v", err)
	}

	loaded, err := LoadResults(path)
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}
	if !reflect.DeepEqual(loaded, data) {
		t.Fatalf("expected %+v but found %+v", data, loaded)
	}
}

func TestLoadResultsMissing(t *testing.T) {
	// a missing results file is not an error, it means a fresh run
	loaded, err := LoadResults(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}
	if loaded != nil {
		t.Fatalf("expected nil stats for a missing file")
	}
}

func TestCodeInfoDistinguishesCodes(t *testing.T) {
	if CodeInfo(3) == CodeInfo(5) {
		t.Fatalf("expected different fingerprints for different repetition counts")
	}
}
