package cli

import (
	"fmt"
	"os"

	"procman/internal/app/colors"
	"procman/internal/config"
	"procman/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Run(args []string) error
}

// cli represents the command-line interface for the application
type cli struct {
	cfg  *config.Config
	repl *REPL
	log  logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(
	cfg *config.Config,
	repl *REPL,
	log logger.Logger,
) CLI {
	return &cli{
		cfg:  cfg,
		repl: repl,
		log:  log,
	}
}

// Run parses command-line arguments and executes the selected command
func (c *cli) Run(args []string) error {
	opts, err := Parse(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", colors.Error("Error:"), err)
		return err
	}

	if opts.NoColor {
		c.cfg.Display.NoColor = true
	}

	switch opts.Type {
	case CommandHelp:
		return c.handleHelp()
	case CommandVersion:
		return c.handleVersion()
	case CommandInit:
		return c.handleInit()
	default:
		return c.handleRun(opts.SortBy)
	}
}

// handleRun starts monitoring and hands the terminal to the command loop
func (c *cli) handleRun(sortBy string) error {
	c.log.Debug().Msgf("Starting monitor (sort: %q)", sortBy)

	if err := c.repl.engine.Start(sortBy); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", colors.Error("Error:"), err)
		return err
	}

	return c.repl.Run()
}

// handleHelp displays help information
func (c *cli) handleHelp() error {
	c.log.Debug().Msg("Displaying help information")
	fmt.Print(RenderUsage())
	return nil
}

// handleVersion displays version information
func (c *cli) handleVersion() error {
	c.log.Debug().Msg("Displaying version information")
	fmt.Println(RenderTitle())
	return nil
}

// handleInit writes a starter config file in the working directory
func (c *cli) handleInit() error {
	if err := config.WriteScaffold(config.FileName); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", colors.Error("Error:"), err)
		return err
	}

	fmt.Printf("%s %s\n", colors.Success("Created"), config.FileName)

	return nil
}
