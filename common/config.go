package common

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"CycleSkip/cycle"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML file read by the solver.
//
//	max_iterations: 50M
//	method: floyd
//	steps:
//	  wheel: 202420242024
//	  light: 1G
type Config struct {
	MaxIterations string            `yaml:"max_iterations"`
	Method        string            `yaml:"method"`
	Steps         map[string]string `yaml:"steps"`
}

// LoadConfig reads a config file. A missing path yields the zero Config.
func LoadConfig(path string) (Config, error) {
	var config Config
	if path == "" {
		return config, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)
	return ReadConfig(f)
}

// ReadConfig decodes a config from r.
func ReadConfig(r io.Reader) (Config, error) {
	var config Config
	err := yaml.NewDecoder(r).Decode(&config)
	if err != nil && !errors.Is(err, io.EOF) {
		return config, fmt.Errorf("reading config: %w", err)
	}
	return config, nil
}

// ParseMethod maps a method name onto a cycle.Method. Empty means exact.
func ParseMethod(name string) (cycle.Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "exact":
		return cycle.MethodExact, nil
	case "floyd":
		return cycle.MethodFloyd, nil
	default:
		return cycle.MethodExact, fmt.Errorf("unknown method %q (want exact or floyd)", name)
	}
}

// Options turns the file settings into engine options.
func (c Config) Options() ([]cycle.Option, error) {
	options := []cycle.Option{}
	if c.MaxIterations != "" {
		n, err := DecodeBudget(c.MaxIterations)
		if err != nil {
			return nil, fmt.Errorf("max_iterations: %w", err)
		}
		options = append(options, cycle.WithMaxIterations(n))
	}
	method, err := ParseMethod(c.Method)
	if err != nil {
		return nil, err
	}
	return append(options, cycle.WithMethod(method)), nil
}
