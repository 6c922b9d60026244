package tools

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/nathanhack/dnastore/benchmarking"
	"github.com/nathanhack/dnastore/repetition"
)

// SimulationStats is the on-disk result of a channel simulation run, keyed by
// the channel's error probability so runs can be resumed and merged.
type SimulationStats struct {
	TypeInfo string
	CodeInfo string
	Stats    map[float64]benchmarking.Stats
}
type simulationStats struct {
	TypeInfo string
	CodeInfo string
	Stats    map[string]benchmarking.Stats
}

func (s *SimulationStats) MarshalJSON() ([]byte, error) {
	ss := simulationStats{
		TypeInfo: s.TypeInfo,
		CodeInfo: s.CodeInfo,
		Stats:    map[string]benchmarking.Stats{},
	}

	for f, stat := range s.Stats {
		ss.Stats[fmt.Sprintf("%v", f)] = stat
	}

	return json.Marshal(ss)
}

func (s *SimulationStats) UnmarshalJSON(bytes []byte) error {
	var ss simulationStats

	err := json.Unmarshal(bytes, &ss)
	if err != nil {
		return err
	}

	s.TypeInfo = ss.TypeInfo
	s.CodeInfo = ss.CodeInfo
	s.Stats = map[float64]benchmarking.Stats{}

	for fs, stat := range ss.Stats {
		f, err := strconv.ParseFloat(fs, 64)
		if err != nil {
			return err
		}
		s.Stats[f] = stat
	}
	return nil
}

// CodeInfo fingerprints the repetition code a result set belongs to, so a
// resumed run can refuse stats from a different code.
func CodeInfo(repetitions int) string {
	if repetitions < 2 {
		return fmt.Sprintf("repetition:%v", repetitions)
	}
	return fmt.Sprintf("repetition:%v:%x", repetitions, md5.Sum([]byte(repetition.ParityCheck(repetitions).String())))
}

func LoadResults(filepath string) (*SimulationStats, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, nil
	}

	bs, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %v\n", filepath, err)
	}

	var stat SimulationStats
	err = json.Unmarshal(bs, &stat)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %v\n", filepath, err)
	}
	return &stat, nil
}

func SaveResults(filepath string, data *SimulationStats) error {
	bs, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error serializing results: %v\n", err)
	}

	err = ioutil.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("error while saving results to %v: %v\n", filepath, err)
	}
	return nil
}
