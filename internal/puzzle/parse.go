package puzzle

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition is the on-disk puzzle description. TotalTubes is optional;
// when present it must agree with the number of tube entries, which
// guards against truncated files from upstream state capture.
type Definition struct {
	TotalTubes int       `yaml:"total_tubes,omitempty"`
	Capacity   int       `yaml:"capacity"`
	Tubes      [][]Color `yaml:"tubes"`
}

// Parse decodes a YAML puzzle definition and builds a validated State.
func Parse(data []byte) (*State, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decode puzzle: %w", err)
	}

	total := def.TotalTubes
	if total == 0 {
		total = len(def.Tubes)
	}
	return New(total, def.Capacity, def.Tubes)
}

// LoadFile reads and parses a puzzle definition from path.
func LoadFile(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read puzzle file: %w", err)
	}
	return Parse(data)
}

// Marshal encodes the state as a YAML puzzle definition, the inverse of
// Parse. Used by the generator to write puzzles to disk.
func (s *State) Marshal() ([]byte, error) {
	tubes := make([][]Color, len(s.Tubes))
	for i, tube := range s.Tubes {
		tubes[i] = []Color(tube)
	}
	def := Definition{
		TotalTubes: len(s.Tubes),
		Capacity:   s.Capacity,
		Tubes:      tubes,
	}
	return yaml.Marshal(def)
}
