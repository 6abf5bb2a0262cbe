package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"procman/internal/app/colors"
	"procman/internal/app/control"
	"procman/internal/app/eventlog"
	"procman/internal/app/monitor"
	"procman/internal/config"
	"procman/internal/config/logger"
)

const prompt = "procman> "

// REPL is the interactive command loop. It owns the foreground terminal
// while the monitoring loops run in the background.
type REPL struct {
	engine     monitor.Engine
	terminator control.Terminator
	recorder   eventlog.Recorder
	cfg        *config.Config
	log        logger.Logger

	in      io.Reader
	out     io.Writer
	scanner *bufio.Scanner
}

// NewREPL creates the interactive command loop
func NewREPL(
	engine monitor.Engine,
	terminator control.Terminator,
	recorder eventlog.Recorder,
	cfg *config.Config,
	log logger.Logger,
) *REPL {
	return &REPL{
		engine:     engine,
		terminator: terminator,
		recorder:   recorder,
		cfg:        cfg,
		log:        log,
		in:         os.Stdin,
		out:        os.Stdout,
	}
}

// Run reads commands until exit or EOF. Monitoring is stopped before
// returning so no loop outlives the prompt.
func (r *REPL) Run() error {
	r.scanner = bufio.NewScanner(r.in)

	fmt.Fprintf(r.out, "%s %s\n", colors.Title("procman"), colors.Success("v"+config.Version))
	fmt.Fprintf(r.out, "%s\n\n", colors.Muted("Type 'help' for available commands."))

	for {
		fmt.Fprint(r.out, prompt)

		if !r.scanner.Scan() {
			break
		}

		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}

		if r.dispatch(line) {
			break
		}
	}

	if r.engine.Active() {
		if err := r.engine.Stop(); err != nil {
			r.log.Warn().Err(err).Msg("Failed to stop monitoring on exit")
		}
	}

	return r.scanner.Err()
}

// dispatch executes one command line. Returns true when the loop should end.
func (r *REPL) dispatch(line string) bool {
	fields := strings.Fields(line)
	verb, args := fields[0], fields[1:]

	var err error

	switch verb {
	case "start":
		err = r.handleStart(args)
	case "stop":
		err = r.engine.Stop()
	case "pause":
		err = r.engine.Pause()
	case "resume":
		err = r.engine.Resume()
	case "list":
		r.handleList()
	case "kill":
		err = r.handleKill(args)
	case "killall":
		err = r.handleKillAll(args)
	case "filter":
		err = r.handleFilter(args)
	case "sort":
		err = r.handleSort(args)
	case "interval":
		err = r.handleInterval(args)
	case "log":
		err = r.handleLog(args)
	case "clear":
		fmt.Fprint(r.out, colors.ClearScreen)
	case "help":
		r.printHelp()
	case "exit", "quit":
		return true
	default:
		fmt.Fprintf(r.out, "Unknown command '%s'. Type '%s' for available commands.\n",
			verb, colors.Primary("help"))
		return false
	}

	if err != nil {
		r.log.Debug().Err(err).Msgf("Command rejected: %s", line)
		fmt.Fprintf(r.out, "%s %v\n", colors.Error("Error:"), err)
	}

	return false
}

func (r *REPL) handleStart(args []string) error {
	sortBy := ""
	if len(args) > 0 {
		sortBy = args[0]
	}

	if err := r.engine.Start(sortBy); err != nil {
		return err
	}

	fmt.Fprintln(r.out, colors.Success("Monitoring started."))

	return nil
}

// handleList prints a one-shot listing without waiting for the display loop
func (r *REPL) handleList() {
	rows := r.engine.ListSnapshot()
	if len(rows) == 0 {
		fmt.Fprintln(r.out, colors.Muted("No processes tracked. Is monitoring started?"))
		return
	}

	header := fmt.Sprintf("%-8s %-12s %8s %12s  %s", "PID", "User", "CPU(%)", "Memory(MB)", "Command")
	fmt.Fprintln(r.out, colors.Subtitle(header))

	for _, rec := range rows {
		cpu := colors.CPU(fmt.Sprintf("%8.2f", rec.CPUPercent), rec.CPUPercent)
		fmt.Fprintf(r.out, "%-8d %-12s %s %12.2f  %s\n",
			rec.PID, rec.Owner, cpu, rec.MemoryMB, truncateCommand(rec.Command))
	}
}

func (r *REPL) handleKill(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: kill <pid>")
	}

	pid, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid PID '%s'", args[0])
	}

	if !r.confirm(fmt.Sprintf("Kill process %d?", pid)) {
		fmt.Fprintln(r.out, colors.Muted("Aborted."))
		return nil
	}

	if err := r.terminator.Kill(pid); err != nil {
		return err
	}

	fmt.Fprintf(r.out, "%s\n", colors.Success(fmt.Sprintf("Killed process %d.", pid)))

	return nil
}

func (r *REPL) handleKillAll(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: killall <cpu|user> <value>")
	}

	kind, value := args[0], args[1]

	if !r.confirm(fmt.Sprintf("Kill all processes matching %s %s?", kind, value)) {
		fmt.Fprintln(r.out, colors.Muted("Aborted."))
		return nil
	}

	var (
		count int
		err   error
	)

	switch kind {
	case "cpu":
		threshold, parseErr := strconv.ParseFloat(value, 64)
		if parseErr != nil {
			return fmt.Errorf("invalid CPU threshold '%s'", value)
		}

		count, err = r.terminator.KillByCPU(threshold)
	case "user":
		count, err = r.terminator.KillByUser(value)
	default:
		return fmt.Errorf("usage: killall <cpu|user> <value>")
	}

	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "%s\n", colors.Success(fmt.Sprintf("Killed %d processes.", count)))

	return nil
}

func (r *REPL) handleFilter(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: filter <user|cpu|memory|command|none> [value]")
	}

	kind := args[0]
	value := strings.Join(args[1:], " ")

	if err := r.engine.SetFilter(kind, value); err != nil {
		return err
	}

	if kind == "none" {
		fmt.Fprintln(r.out, colors.Success("Filter cleared."))
	} else {
		fmt.Fprintf(r.out, "%s\n", colors.Success(fmt.Sprintf("Filtering by %s %s.", kind, value)))
	}

	return nil
}

func (r *REPL) handleSort(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: sort <cpu|memory>")
	}

	if err := r.engine.SetSort(args[0]); err != nil {
		return err
	}

	fmt.Fprintf(r.out, "%s\n", colors.Success(fmt.Sprintf("Sorting by %s.", args[0])))

	return nil
}

func (r *REPL) handleInterval(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: interval <seconds>")
	}

	seconds, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid interval '%s'", args[0])
	}

	if err := r.engine.SetInterval(seconds); err != nil {
		return err
	}

	fmt.Fprintf(r.out, "%s\n", colors.Success(fmt.Sprintf("Update interval set to %ds.", seconds)))

	return nil
}

// handleLog shows or retargets the event log file
func (r *REPL) handleLog(args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "Event log: %s\n", colors.Primary(r.recorder.Path()))
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("usage: log [file]")
	}

	if err := r.recorder.Retarget(args[0]); err != nil {
		return err
	}

	fmt.Fprintf(r.out, "%s\n", colors.Success(fmt.Sprintf("Event log now at %s.", args[0])))

	return nil
}

// confirm asks a yes/no question on the prompt's own reader. Anything other
// than y/yes declines.
func (r *REPL) confirm(question string) bool {
	fmt.Fprintf(r.out, "%s %s ", colors.Warning(question), colors.Muted("(y/N):"))

	if !r.scanner.Scan() {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(r.scanner.Text()))

	return answer == "y" || answer == "yes"
}

func truncateCommand(command string) string {
	if len(command) <= config.CommandDisplayWidth {
		return command
	}

	return command[:config.CommandDisplayWidth-3] + "..."
}
