package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fjl/giocalc/internal/calc"
)

func pressCmd(config *calc.Config) *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "press BUTTON...",
		Short: "Apply buttons and print the display",
		Long: `Apply buttons to a fresh calculator and print what it displays.

Buttons are 0-9, 00, ".", "+", "-", "*" (or x), "/", "=", C (clear),
DEL (backspace) and +/- (toggle sign).`,
		Example: "  termcalc press 5 + 3 x 2 =",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buttons := make([]calc.Button, len(args))
			for i, arg := range args {
				b, err := calc.ParseButton(arg)
				if err != nil {
					return err
				}
				buttons[i] = b
			}
			return press(cmd.OutOrStdout(), calc.Engine{Config: *config}, buttons, trace)
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "print the display after every button")
	return cmd
}

// press applies buttons and prints the display.
func press(w io.Writer, engine calc.Engine, buttons []calc.Button, trace bool) error {
	var state calc.State
	for _, b := range buttons {
		state = engine.Press(state, b)
		if trace {
			if _, err := fmt.Fprintf(w, "%-4s %s\n", b, engine.Display(state).Text); err != nil {
				return err
			}
		}
	}
	if trace {
		return nil
	}
	_, err := fmt.Fprintln(w, engine.Display(state).Text)
	return err
}
