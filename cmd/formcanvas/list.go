package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/formcanvas/formcanvas/internal/registry"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved forms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, rootFlags *rootFlags, opts *listOptions) error {
	cfg, err := loadConfig(rootFlags)
	if err != nil {
		return err
	}

	reg, err := openForms(cfg)
	if err != nil {
		return fmt.Errorf("failed to open form registry: %w", err)
	}

	forms := reg.List()
	sort.Slice(forms, func(i, j int) bool {
		return forms[i].UpdatedAt.After(forms[j].UpdatedAt)
	})

	if opts.jsonOutput {
		return renderListJSON(cmd, forms)
	}

	if len(forms) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved forms. Run 'formcanvas build' to create one.")
		return nil
	}

	return renderListTable(cmd, forms)
}

func renderListJSON(cmd *cobra.Command, forms []registry.Form) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(forms)
}

func renderListTable(cmd *cobra.Command, forms []registry.Form) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	if isTerminal() {
		fmt.Fprintln(w, "ID\tTITLE\tELEMENTS\tUPDATED")
	}
	for _, f := range forms {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			f.ID, f.Title, len(f.Elements), f.UpdatedAt.Local().Format(time.RFC822))
	}

	return w.Flush()
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
