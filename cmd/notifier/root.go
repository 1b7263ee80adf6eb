package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"notifier/internal/app"
	"notifier/internal/config"
)

// options is the state shared by every subcommand once flags are parsed.
type options struct {
	configPath string
	cfg        config.Config
	logger     zerolog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "notifier",
		Short:         "Field-level change notifier for tracked catalog entities",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Config file (.yaml, .yml, .json or .toml)")
	pf.String("log-level", config.DefaultLogLevel, "Log level: debug|info|warn|error")
	pf.String("log-format", config.DefaultLogFormat, "Log format: console|json")
	pf.String("policy", "", "Policy file; the built-in policy is used when empty")
	pf.StringSlice("sinks", nil, "Observer sinks: noop, console, log, metrics")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var cfg config.Config
		if opts.configPath != "" {
			c, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg = c
		}
		flags := cmd.Flags()
		if flags.Changed("log-level") {
			cfg.LogLevel, _ = flags.GetString("log-level")
		}
		if flags.Changed("log-format") {
			cfg.LogFormat, _ = flags.GetString("log-format")
		}
		if flags.Changed("policy") {
			cfg.PolicyFile, _ = flags.GetString("policy")
		}
		if flags.Changed("sinks") {
			cfg.Sinks, _ = flags.GetStringSlice("sinks")
		}
		opts.cfg = cfg

		logger, err := newLogger(cmd.ErrOrStderr(), cfg.Defaults())
		if err != nil {
			return err
		}
		opts.logger = logger
		return nil
	}

	root.AddCommand(newDemoCmd(opts), newPolicyCmd(opts), newServeCmd(opts), newCompletionCmd(root))
	return root
}

// newLogger builds the process logger from the log level and format.
func newLogger(w io.Writer, cfg config.Config) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "json":
	case "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	default:
		return zerolog.Nop(), fmt.Errorf("unsupported log format: %s", cfg.LogFormat)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

func (o *options) newApp(out io.Writer) (*app.App, error) {
	return app.New(o.cfg, app.Options{Logger: o.logger, Out: out})
}

func newDemoCmd(opts *options) *cobra.Command {
	var showStats bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Replay the sample catalog and print every notification",
		Long: "demo builds a company, its competitor, an event, a webinar, a content item and\n" +
			"their relations, attaches the configured sinks and walks through field updates\n" +
			"before disposing of every entity. Without --sinks output goes to the console sink.",
		Example: "  notifier demo\n  notifier demo --sinks console,metrics --stats",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(opts.cfg.Sinks) == 0 {
				opts.cfg.Sinks = []string{"console"}
			}
			a, err := opts.newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := a.Demo(); err != nil {
				return err
			}
			if showStats {
				return printJSON(cmd.OutOrStdout(), a.Stats())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showStats, "stats", false, "Print delivery counts as JSON when done")
	return cmd
}

// newCompletionCmd mirrors cobra's generator per shell, writing to the command output.
func newCompletionCmd(root *cobra.Command) *cobra.Command {
	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(cmd.OutOrStdout()) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(cmd.OutOrStdout()) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(cmd.OutOrStdout(), true) }})
	completionCmd.AddCommand(&cobra.Command{Use: "powershell", Short: "PowerShell completion", RunE: func(cmd *cobra.Command, args []string) error {
		return root.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
	}})
	return completionCmd
}
