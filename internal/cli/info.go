package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	automaton "github.com/Yae-sine/Automate-Project"
)

// newInfoCmd creates the info command, which prints the structural
// properties of an automaton definition.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show the properties of an automaton",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			a, err := loadAutomaton(args[0])
			if err != nil {
				return err
			}
			logger.Debugf("loaded %s", a)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render(a.Name()))
			fmt.Fprintln(out, property("alphabet", strings.Join(a.Alphabet().Symbols(), " ")))
			fmt.Fprintln(out, property("states", a.NumStates()))
			fmt.Fprintln(out, property("transitions", a.NumTransitions()))
			fmt.Fprintln(out, property("initial", strings.Join(names(a.InitialStates()), " ")))
			fmt.Fprintln(out, property("final", strings.Join(names(a.FinalStates()), " ")))
			fmt.Fprintln(out, property("deterministic", boolMark(a.IsDeterministic())))
			fmt.Fprintln(out, property("complete", boolMark(a.IsComplete())))
			fmt.Fprintln(out, property("minimal", boolMark(a.IsMinimal())))
			return nil
		},
	}
}

func names(states []automaton.State) []string {
	out := make([]string, 0, len(states))
	for _, s := range states {
		out = append(out, s.Name)
	}
	return out
}
