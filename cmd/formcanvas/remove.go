package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <form-id>",
		Short: "Remove a saved form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, rootFlags, args[0])
		},
	}

	return cmd
}

func runRemove(cmd *cobra.Command, rootFlags *rootFlags, id string) error {
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

	if err := reg.Remove(id); err != nil {
		return err
	}
	if err := reg.Save(); err != nil {
		return fmt.Errorf("failed to save form registry: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", form.Title)
	return nil
}
