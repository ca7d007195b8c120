package rules

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrVersionMismatch = errors.New("constant table version mismatch")

// LoadYAML reads overrides from r on top of Default. Keys missing from the
// document keep their default value.
func LoadYAML(r io.Reader) (Constants, error) {
	c := Default()
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Constants{}, fmt.Errorf("failed to decode rules: %w", err)
	}
	return c, c.check()
}

// LoadJSON reads overrides from r on top of Default.
func LoadJSON(r io.Reader) (Constants, error) {
	c := Default()
	if err := json.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Constants{}, fmt.Errorf("failed to decode rules: %w", err)
	}
	return c, c.check()
}

// LoadFile reads a constant table from path, choosing the decoder by file
// extension (.json, otherwise YAML).
func LoadFile(path string) (Constants, error) {
	f, err := os.Open(path)
	if err != nil {
		return Constants{}, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSON(f)
	}
	return LoadYAML(f)
}

func (c Constants) check() error {
	if c.Version != Version {
		return fmt.Errorf("%w: got %q, want %q", ErrVersionMismatch, c.Version, Version)
	}
	return nil
}
