package tui

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorEnabled reports whether stdout is an interactive terminal; piped
// output stays plain so downstream filters see clean text.
func ColorEnabled() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Profile returns the colour profile for the current terminal, downgraded
// to plain ASCII when colour is disabled.
func Profile(noColor bool) termenv.Profile {
	if noColor || !ColorEnabled() {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}

// PrintBanner outputs the benchkit banner with its version, shown when
// entering watch mode.
func PrintBanner(version string, noColor bool) {
	p := Profile(noColor)
	// Teal-to-green gradient
	lines := []struct {
		text  string
		color string
	}{
		{`  _                     _     _    _ _   `, "#2dd4bf"},
		{` | |__   ___ _ __   ___| |__ | | _(_) |_ `, "#34d399"},
		{` | '_ \ / _ \ '_ \ / __| '_ \| |/ / | __|`, "#4ade80"},
		{` | |_) |  __/ | | | (__| | | |   <| | |_ `, "#a3e635"},
		{` |_.__/ \___|_| |_|\___|_| |_|_|\_\_|\__|`, "#facc15"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Printf("  v%s\n\n", version)
}
