package cli

import (
	"fmt"
	"os"

	automaton "github.com/Yae-sine/Automate-Project"
)

// loadAutomaton reads an automaton definition from a JSON or TOML file.
func loadAutomaton(path string) (*automaton.Automaton, error) {
	a, err := automaton.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load automaton %s: %w", path, err)
	}
	return a, nil
}

// writeResult writes an automaton as JSON to the output path, or to
// stdout when the path is empty.
func writeResult(a *automaton.Automaton, output string) error {
	if output == "" {
		return automaton.Write(a, os.Stdout)
	}
	if err := automaton.WriteFile(a, output); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
