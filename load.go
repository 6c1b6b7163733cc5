package odsgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode parses a JSON or YAML description payload into a generic node tree.
// YAML 1.2 is a JSON superset, so one decoder covers both, and unlike
// encoding/json it keeps integers and floats apart, which the type-driven
// default styles rely on.
func Decode(data []byte) (any, error) {
	var content any
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("decode description: %w", err)
	}
	return content, nil
}

// LoadFile reads and decodes a description file.
func LoadFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read description: %w", err)
	}
	return Decode(data)
}
