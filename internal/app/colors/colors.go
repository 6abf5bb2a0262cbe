package colors

// ANSI color codes for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Italic = "\033[3m"

	// Text colors
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
	Gray    = "\033[90m"
)

// CPU usage thresholds for row coloring, in percent
const (
	CPUHighThreshold     = 20.0
	CPUModerateThreshold = 10.0
)

// ClearScreen moves the cursor home after wiping the terminal
const ClearScreen = "\033[2J\033[H"

// Color functions for semantic styling
func Primary(text string) string {
	return Cyan + text + Reset
}

func Success(text string) string {
	return Green + text + Reset
}

func Warning(text string) string {
	return Yellow + text + Reset
}

func Error(text string) string {
	return Red + text + Reset
}

func Muted(text string) string {
	return Gray + text + Reset
}

func Title(text string) string {
	return Bold + White + text + Reset
}

func Subtitle(text string) string {
	return Bold + text + Reset
}

// CPU colors a value by load: red above 20%, yellow above 10%, green below
func CPU(text string, percent float64) string {
	switch {
	case percent > CPUHighThreshold:
		return Red + text + Reset
	case percent > CPUModerateThreshold:
		return Yellow + text + Reset
	default:
		return Green + text + Reset
	}
}
