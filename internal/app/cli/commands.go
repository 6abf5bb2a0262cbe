package cli

import (
	"github.com/spf13/cobra"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandRun CommandType = iota
	CommandInit
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type    CommandType
	SortBy  string
	NoColor bool
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
	init    bool
}

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type: CommandRun,
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildRunCommand(result),
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	if flags.init {
		result.Type = CommandInit
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "procman",
		Short: "An interactive terminal process monitor",
		Long: `Procman is an interactive terminal process monitor. It samples CPU and
memory usage on an interval and accepts commands to sort, filter, and
terminate the processes it tracks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}

	cmd.PersistentFlags().BoolVar(&result.NoColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")
	cmd.Flags().BoolVarP(&flags.init, "init", "i", false, "Generate procman.yaml template")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildRunCommand creates the run subcommand
func buildRunCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "run [cpu|memory]",
		Aliases:   []string{"r"},
		Short:     "Start the interactive monitor, optionally sorted by cpu or memory",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"cpu", "memory"},
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
			if len(args) > 0 {
				result.SortBy = args[0]
			}
		},
	}

	return cmd
}

// buildInitCommand creates the init subcommand
func buildInitCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Generate procman.yaml template",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInit
		},
	}

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}
