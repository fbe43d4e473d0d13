package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dastralib/dastra/stack"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an infix arithmetic expression",
		Long: `Evaluates an infix expression with +, -, *, /, % and parentheses
using operator-priority scanning over two stacks. Division truncates.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := stack.EvalInfix(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n",
				args[0], accentStyle.Render(fmt.Sprint(result)))

			return nil
		},
	}
}
