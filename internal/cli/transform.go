package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	automaton "github.com/Yae-sine/Automate-Project"
)

// newTransformCmds creates the unary transform commands. Each reads one
// automaton, applies one engine transform, and writes the resulting
// automaton as JSON.
func newTransformCmds() []*cobra.Command {
	transforms := []struct {
		use   string
		short string
		apply func(*automaton.Automaton) *automaton.Automaton
	}{
		{
			use:   "determinize",
			short: "Convert an NFA to an equivalent DFA (subset construction)",
			apply: automaton.Determinize,
		},
		{
			use:   "complete",
			short: "Add a sink state so every (state, symbol) pair has a transition",
			apply: automaton.Complete,
		},
		{
			use:   "minimize",
			short: "Compute the minimal DFA (partition refinement)",
			apply: automaton.Minimize,
		},
		{
			use:   "complement",
			short: "Accept exactly the words the input rejects",
			apply: automaton.Complement,
		},
	}

	cmds := make([]*cobra.Command, 0, len(transforms))
	for _, tr := range transforms {
		cmds = append(cmds, newTransformCmd(tr.use, tr.short, tr.apply))
	}
	return cmds
}

func newTransformCmd(use, short string, apply func(*automaton.Automaton) *automaton.Automaton) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   use + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			a, err := loadAutomaton(args[0])
			if err != nil {
				return err
			}

			p := newProgress(logger)
			result := apply(a)
			p.done(fmt.Sprintf("%s: %d states -> %d states", use, a.NumStates(), result.NumStates()))

			return writeResult(result, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}
