package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"notifier/internal/app"
	"notifier/internal/catalog"
	"notifier/pkg/types"
)

func newPolicyCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{Use: "policy", Short: "Inspect and validate notification policies", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("policy requires a subcommand: show|validate")
	}}

	var format string
	show := &cobra.Command{
		Use:     "show",
		Short:   "Print the effective policy",
		Example: "  notifier policy show\n  notifier policy show -o yaml > policy.yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.LoadPolicy(opts.cfg.PolicyFile)
			if err != nil {
				return err
			}
			reg, err := catalog.NewRegistry(entries)
			if err != nil {
				return err
			}
			view := reg.View()
			switch strings.ToLower(format) {
			case "table", "":
				return printTable(cmd.OutOrStdout(), view)
			case "json":
				return printJSON(cmd.OutOrStdout(), view)
			case "yaml", "yml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(view); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unsupported output format: %s", format)
			}
		},
	}
	show.Flags().StringVarP(&format, "output", "o", "table", "Output format: table|json|yaml")

	validate := &cobra.Command{
		Use:     "validate [file]",
		Short:   "Check a policy file against the entity catalog",
		Example: "  notifier policy validate policy.yaml",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.cfg.PolicyFile
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("policy validate requires a file (argument or --policy)")
			}
			entries, err := app.LoadPolicy(path)
			if err != nil {
				return err
			}
			reg, err := catalog.NewRegistry(entries)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d entity types)\n", path, len(reg.Types()))
			return err
		},
	}

	cmd.AddCommand(show, validate)
	return cmd
}

func printTable(w io.Writer, view types.PolicyResponse) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tFIELDS\tACTIONS\tNOTIFY ON")
	for _, e := range view.Entities {
		actions := make([]string, len(e.Actions))
		for i, a := range e.Actions {
			actions[i] = string(a)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Type, orDash(e.Fields), orDash(actions), orDash(e.NotifyOn))
	}
	return tw.Flush()
}

func orDash(s []string) string {
	if len(s) == 0 {
		return "-"
	}
	return strings.Join(s, ",")
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
