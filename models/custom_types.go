package models

import (
	"encoding/json"
	"fmt"
)

// HeaderPair is one header line. It is encoded as a two element JSON array,
// ["name", "value"], so repeated names survive serialization.
type HeaderPair struct {
	Name  string
	Value string
}

func (p HeaderPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{p.Name, p.Value})
}

func (p *HeaderPair) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("header pair must have 2 elements, got %d", len(raw))
	}
	p.Name, p.Value = raw[0], raw[1]
	return nil
}
