// Package config holds the rendered prefix words per reference kind and
// loads optional overrides from a YAML file.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pandoc-xref/internal/refs"
)

// Prefixes maps each reference kind to the word rendered before a resolved
// link. Empty fields fall back to the canonical words.
type Prefixes struct {
	Section  string `yaml:"section"`
	Equation string `yaml:"equation"`
	Figure   string `yaml:"figure"`
	Table    string `yaml:"table"`
}

// Default returns the canonical prefix words.
func Default() Prefixes {
	return Prefixes{
		Section:  refs.Section.String(),
		Equation: refs.Equation.String(),
		Figure:   refs.Figure.String(),
		Table:    refs.Table.String(),
	}
}

// Load reads overrides from a YAML file and merges them over the defaults.
// Unknown keys are rejected so typos do not silently keep defaults.
func Load(path string) (Prefixes, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	var over Prefixes
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&over); err != nil {
		return p, fmt.Errorf("parsing %s: %w", path, err)
	}
	p.merge(over)
	return p, nil
}

func (p *Prefixes) merge(over Prefixes) {
	if over.Section != "" {
		p.Section = over.Section
	}
	if over.Equation != "" {
		p.Equation = over.Equation
	}
	if over.Figure != "" {
		p.Figure = over.Figure
	}
	if over.Table != "" {
		p.Table = over.Table
	}
}

// Word returns the prefix word for a kind; None yields "".
func (p Prefixes) Word(k refs.Kind) string {
	switch k {
	case refs.Section:
		return p.Section
	case refs.Equation:
		return p.Equation
	case refs.Figure:
		return p.Figure
	case refs.Table:
		return p.Table
	default:
		return ""
	}
}
