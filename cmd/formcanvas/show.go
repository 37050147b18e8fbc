package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/formcanvas/formcanvas/internal/element"
)

type showOptions struct {
	jsonOutput bool
}

func newShowCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <form-id>",
		Short: "Show a saved form's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runShow(cmd *cobra.Command, rootFlags *rootFlags, opts *showOptions, id string) error {
	cfg, err := loadConfig(rootFlags)
	if err != nil {
		return err
	}

	reg, err := openForms(cfg)
	if err != nil {
		return fmt.Errorf("failed to open form registry: %w", err)
	}

	form, err := reg.Get(id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if opts.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(form)
	}

	fmt.Fprintf(out, "%s\n", form.Title)
	if form.Description != "" {
		fmt.Fprintf(out, "%s\n", form.Description)
	}
	fmt.Fprintf(out, "id: %s\n", form.ID)
	fmt.Fprintf(out, "updated: %s\n", form.UpdatedAt.Local().Format(time.RFC822))
	fmt.Fprintf(out, "elements:\n")
	for i, e := range form.Elements {
		fmt.Fprintf(out, "  %d. %s (%s)%s\n", i+1, e.Label, e.Type, requiredMark(e))
	}

	return nil
}

func requiredMark(e element.Element) string {
	if e.Required {
		return " *"
	}
	return ""
}
