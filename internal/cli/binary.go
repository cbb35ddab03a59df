package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	automaton "github.com/Yae-sine/Automate-Project"
)

// newUnionCmd creates the union command.
func newUnionCmd() *cobra.Command {
	return newBinaryCmd("union", "Accept words accepted by either automaton", automaton.Union)
}

// newIntersectionCmd creates the intersection command.
func newIntersectionCmd() *cobra.Command {
	return newBinaryCmd("intersection", "Accept words accepted by both automata", automaton.Intersection)
}

func newBinaryCmd(use, short string, combine func(a, b *automaton.Automaton) (*automaton.Automaton, error)) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   use + " <fileA> <fileB>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			a, err := loadAutomaton(args[0])
			if err != nil {
				return err
			}
			b, err := loadAutomaton(args[1])
			if err != nil {
				return err
			}

			p := newProgress(logger)
			result, err := combine(a, b)
			if err != nil {
				return fmt.Errorf("%s: %w", use, err)
			}
			p.done(fmt.Sprintf("%s of %s and %s: %d states", use, a.Name(), b.Name(), result.NumStates()))

			return writeResult(result, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

// newEquivalentCmd creates the equivalent command, which prints a
// verdict and exits non-zero when the languages differ.
func newEquivalentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equivalent <fileA> <fileB>",
		Short: "Check whether two automata accept the same language",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAutomaton(args[0])
			if err != nil {
				return err
			}
			b, err := loadAutomaton(args[1])
			if err != nil {
				return err
			}

			eq, err := automaton.Equivalent(a, b)
			if err != nil {
				return fmt.Errorf("equivalent: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), verdict(eq, "equivalent", "not equivalent"))
			if !eq {
				cmd.SilenceErrors = true
				return fmt.Errorf("%s and %s are not equivalent", a.Name(), b.Name())
			}
			return nil
		},
	}
}
