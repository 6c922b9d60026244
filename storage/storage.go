// Package storage composes the repetition code and the positional codec into
// the full encode/decode pipeline. Each encode yields an Encoded value that
// pairs the position sequence with the pre-padding bit length; nothing is
// kept between calls, so one process may serve many callers concurrently.
package storage

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/nathanhack/dnastore/dna"
	"github.com/nathanhack/dnastore/repetition"
)

// Encoded is the result of one pipeline encode: the DNA positions plus the
// bit length of the repetition-coded data before padding. Decode requires
// both.
type Encoded struct {
	Positions      dna.Sequence `json:"dna_sequence"`
	OriginalLength int          `json:"original_length"`
}

// Encode runs bits through the repetition code and then the positional codec.
func Encode(bits string, repetitions int) (Encoded, error) {
	corrected, err := repetition.Encode(bits, repetitions)
	if err != nil {
		return Encoded{}, err
	}

	seq, originalLength, err := dna.Encode(corrected)
	if err != nil {
		return Encoded{}, err
	}

	return Encoded{Positions: seq, OriginalLength: originalLength}, nil
}

// Decode inverts Encode: positional decode truncated to the recorded length,
// then majority-vote decode.
func Decode(e Encoded, repetitions int) (string, error) {
	corrected, err := dna.Decode(e.Positions, e.OriginalLength)
	if err != nil {
		return "", err
	}
	return repetition.Decode(corrected, repetitions)
}

// Load reads an Encoded artifact previously written by Save.
func Load(filepath string) (*Encoded, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, fmt.Errorf("the ENCODED_JSON file must exist")
	}

	bs, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %v", filepath, err)
	}

	var e Encoded
	err = json.Unmarshal(bs, &e)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %v", filepath, err)
	}
	return &e, nil
}

// Save writes an Encoded artifact as JSON.
func Save(filepath string, e Encoded) error {
	bs, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("error serializing sequence: %v", err)
	}

	err = ioutil.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("error while saving sequence to %v: %v", filepath, err)
	}
	return nil
}
