package automaton

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Marshal converts an automaton to indented JSON bytes.
func Marshal(a *Automaton) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(a, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes an automaton as indented JSON to w.
func Write(a *Automaton, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(a.Record()); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes an automaton to a JSON file, creating it with 0644
// permissions.
func WriteFile(a *Automaton, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(a, f)
}

// Read decodes a JSON automaton from r.
func Read(r io.Reader) (*Automaton, error) {
	var rec Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return FromRecord(rec), nil
}

// ReadTOML decodes a TOML automaton definition from r. TOML is the
// hand-authoring format; it carries the same record shape as JSON.
func ReadTOML(r io.Reader) (*Automaton, error) {
	var rec Record
	if _, err := toml.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return FromRecord(rec), nil
}

// ReadFile reads an automaton from a file, picking the decoder by
// extension: .toml for TOML definitions, JSON otherwise.
func ReadFile(path string) (*Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ReadTOML(f)
	}
	return Read(f)
}

// List returns the names of the automata saved as JSON files in dir,
// sorted, without the .json extension. A missing directory yields an
// empty list.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	sort.Strings(names)
	return names, nil
}
