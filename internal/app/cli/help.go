package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"procman/internal/app/colors"
)

// RenderUsage renders the top-level usage block for the help command
func RenderUsage() string {
	usageSection := sectionHeader.Render("Usage:")
	usage := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+commandName.Render("procman run [cpu|memory]")+"        Start the interactive monitor"),
		bodyMedium.Render("  "+commandName.Render("procman init")+"                    Generate procman.yaml template"),
		bodyMedium.Render("  "+commandName.Render("procman version")+"                 Show version"),
	)

	examplesSection := sectionHeader.Render("Examples:")
	examples := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+exampleCode.Render("procman run")+"                     Monitor sorted by CPU usage"),
		bodyMedium.Render("  "+exampleCode.Render("procman run memory")+"              Monitor sorted by memory usage"),
		bodyMedium.Render("  "+exampleCode.Render("procman run --no-color")+"          Monitor without colored output"),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		usageSection,
		usage,
		examplesSection,
		examples,
	) + "\n"
}

// printHelp lists the interactive commands on the prompt's writer
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "\n%s\n", colors.Subtitle("COMMANDS"))

	entries := []struct {
		usage string
		desc  string
	}{
		{"start [cpu|memory]", "Start monitoring, optionally overriding the sort order"},
		{"stop", "Stop monitoring"},
		{"pause", "Pause sampling and display without stopping"},
		{"resume", "Resume a paused monitor"},
		{"list", "Print a one-shot process listing"},
		{"kill <pid>", "Kill a process (asks for confirmation)"},
		{"killall cpu <percent>", "Kill processes above a CPU threshold (confirmed)"},
		{"killall user <name>", "Kill all of a user's processes (confirmed)"},
		{"filter <kind> <value>", "Filter by user, cpu, memory, or command; 'filter none' clears"},
		{"sort <cpu|memory>", "Change the display ordering"},
		{"interval <seconds>", "Change the sampling interval"},
		{"log [file]", "Show or change the event log file"},
		{"clear", "Clear the screen"},
		{"help", "Show this help"},
		{"exit, quit", "Stop monitoring and leave"},
	}

	for _, entry := range entries {
		fmt.Fprintf(r.out, "  %-24s %s\n", colors.Primary(entry.usage), colors.Muted(entry.desc))
	}

	fmt.Fprintln(r.out)
}
