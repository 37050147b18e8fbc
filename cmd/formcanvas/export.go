package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type exportOptions struct {
	format string
	output string
}

func newExportCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export <form-id>",
		Short: "Export a saved form definition",
		Long:  `Write a saved form's full definition as YAML or JSON, to stdout or a file.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "yaml", "Output format: yaml or json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, rootFlags *rootFlags, opts *exportOptions, id string) error {
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

	var data []byte
	switch opts.format {
	case "yaml":
		data, err = yaml.Marshal(form)
	case "json":
		data, err = json.MarshalIndent(form, "", "  ")
	default:
		return fmt.Errorf("unknown format %q (expected yaml or json)", opts.format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode form: %w", err)
	}

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(opts.output, data, 0o644)
}
