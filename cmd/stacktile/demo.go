package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/1broseidon/stacktile/internal/tui"
)

func runDemo(args []string) int {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	layoutsPath := fs.String("layouts", "", "Layouts file path (default: ~/.config/stacktile/layouts.yaml)")

	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stdout, "Usage: stacktile demo [--layouts PATH]")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "Interactive layout explorer with a live preview.")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "Keybindings:")
		fmt.Fprintln(os.Stdout, "  j/k, ↑/↓  Select layout")
		fmt.Fprintln(os.Stdout, "  /         Filter layouts")
		fmt.Fprintln(os.Stdout, "  +/-       Change window count")
		fmt.Fprintln(os.Stdout, "  h/l       Shrink/grow the main column")
		fmt.Fprintln(os.Stdout, "  m/n       More/fewer main windows")
		fmt.Fprintln(os.Stdout, "  f/v       Flip horizontally/vertically")
		fmt.Fprintln(os.Stdout, "  r/R       Rotate clockwise/counter-clockwise")
		fmt.Fprintln(os.Stdout, "  b         Toggle stack balancing")
		fmt.Fprintln(os.Stdout, "  q, Esc    Quit")
		return 0
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "demo takes no arguments")
		return 2
	}

	reg, err := loadRegistry(*layoutsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := tui.Run(reg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
