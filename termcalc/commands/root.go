package commands

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fjl/giocalc/internal/calc"
	"github.com/fjl/giocalc/internal/session"
	"github.com/fjl/giocalc/internal/tui"
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var (
		config  calc.Config
		logFile string
	)
	root := &cobra.Command{
		Use:          "termcalc",
		Short:        "Button-driven calculator for the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(config, logFile)
		},
	}

	root.PersistentFlags().Var(&config.Precision, "precision", "result display: full or fixed2")
	root.PersistentFlags().Var(&config.Errors, "errors", "error display: descriptive or literal")
	root.Flags().StringVar(&logFile, "log-file", "", "write debug log to this file")

	root.AddCommand(pressCmd(&config))
	return root
}

// runTUI runs the interactive calculator until the user quits.
func runTUI(config calc.Config, logFile string) error {
	logger := log.New(io.Discard, "", 0)
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "termcalc")
		if err != nil {
			return err
		}
		defer f.Close()
		logger = log.Default()
	}

	s := session.New(calc.Engine{Config: config}, logger)
	defer s.Close()

	prog := tea.NewProgram(tui.NewModel(s))
	_, err := prog.Run()
	return err
}
