// Package cli implements the automata command-line interface, a thin
// presentation layer over the engine in the repository root. Commands
// read automata from JSON or TOML files, run one engine operation, and
// write the result as JSON or print a styled verdict.
//
// All commands support --verbose (-v) for debug-level logging; the
// logger travels through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version,
// typically injected by the main package via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the automata CLI and returns an error if any command
// fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "automata",
		Short:        "Compute with finite automata",
		Long:         `automata runs classical automata-theoretic operations on DFA/NFA definitions stored as JSON or TOML files: determinization, completion, minimization, complement, union, intersection, equivalence, word acceptance, and bounded word enumeration.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("automata %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newInfoCmd())
	root.AddCommand(newTransformCmds()...)
	root.AddCommand(newUnionCmd())
	root.AddCommand(newIntersectionCmd())
	root.AddCommand(newEquivalentCmd())
	root.AddCommand(newAcceptCmd())
	root.AddCommand(newWordsCmd())

	return root.ExecuteContext(context.Background())
}
