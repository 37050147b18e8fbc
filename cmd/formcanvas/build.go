package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/formcanvas/formcanvas/internal/theme"
	"github.com/formcanvas/formcanvas/internal/tui/builder"
	"github.com/formcanvas/formcanvas/internal/wizard"
)

type buildOptions struct {
	reset bool
}

func newBuildCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Launch the interactive form builder",
		Long:  `Launch the interactive three-step wizard to build, style, and preview a form.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.reset, "reset", false, "Discard the saved session and start fresh")

	return cmd
}

func runBuild(rootFlags *rootFlags, opts *buildOptions) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the builder requires an interactive terminal")
	}

	cfg, err := loadConfig(rootFlags)
	if err != nil {
		return err
	}

	log, err := newAppLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	st, err := sessionStore(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to prepare session storage: %w", err)
	}

	forms, err := openForms(cfg)
	if err != nil {
		return fmt.Errorf("failed to open form registry: %w", err)
	}

	catalog := theme.DefaultCatalog()
	session := wizard.NewSession(catalog, st, log)
	if opts.reset {
		session.Reset()
	}

	model := builder.NewModel(session, catalog, forms, log, cfg.ConfirmationsEnabled())

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("builder failed: %w", err)
	}

	return nil
}
