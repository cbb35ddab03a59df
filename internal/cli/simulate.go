package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	automaton "github.com/Yae-sine/Automate-Project"
)

// newAcceptCmd creates the accept command. A single word argument is
// split into one-rune symbols; several arguments are taken as whole
// symbols, which covers multi-character alphabets.
func newAcceptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <file> [word]...",
		Short: "Check whether an automaton accepts a word",
		Long: `Check whether an automaton accepts a word.

With a single word argument, each character is one input symbol:

    automata accept machine.json abba

With several arguments, each argument is one whole symbol:

    automata accept machine.json go stop go

With no word argument the empty word is checked.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAutomaton(args[0])
			if err != nil {
				return err
			}

			var accepted bool
			switch len(args) {
			case 1:
				accepted = a.Accepts()
			case 2:
				accepted = a.AcceptsString(args[1])
			default:
				accepted = a.Accepts(args[1:]...)
			}

			fmt.Fprintln(cmd.OutOrStdout(), verdict(accepted, "accepted", "rejected"))
			if !accepted {
				cmd.SilenceErrors = true
				return fmt.Errorf("word rejected by %s", a.Name())
			}
			return nil
		},
	}
}

// newWordsCmd creates the words command, which enumerates the accepted
// words up to a maximum length.
func newWordsCmd() *cobra.Command {
	var maxLength int

	cmd := &cobra.Command{
		Use:   "words <file>",
		Short: "Enumerate accepted words up to a maximum length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			a, err := loadAutomaton(args[0])
			if err != nil {
				return err
			}

			p := newProgress(logger)
			words := automaton.GenerateWords(a, maxLength)
			p.done(fmt.Sprintf("%d accepted words up to length %d", len(words), maxLength))

			// BFS discovery order is not canonical; sort by length,
			// then lexicographically, for stable display.
			sort.Slice(words, func(i, j int) bool {
				if len(words[i]) != len(words[j]) {
					return len(words[i]) < len(words[j])
				}
				return words[i] < words[j]
			})

			out := cmd.OutOrStdout()
			for _, w := range words {
				if w == "" {
					w = styleNeutral.Render("(empty word)")
				}
				fmt.Fprintln(out, w)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&maxLength, "max-length", "n", 5, "maximum word length in symbols")
	return cmd
}
