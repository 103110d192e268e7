package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/1broseidon/stacktile/internal/render"
)

func runPreview(args []string) int {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: stacktile preview [--windows N] [--width W] [--height H] <layout>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Render a layout as ASCII art. Width and height default to the")
		fmt.Fprintln(os.Stderr, "terminal size when stdout is a terminal.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	windows := fs.Int("windows", 4, "Number of windows to lay out")
	width := fs.Int("width", 0, "Canvas width in characters (default: terminal width)")
	height := fs.Int("height", 0, "Canvas height in characters (default: terminal height)")
	layoutsPath := fs.String("layouts", "", "Layouts file path (default: ~/.config/stacktile/layouts.yaml)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "preview requires <layout>")
		fs.Usage()
		return 2
	}

	w, h := *width, *height
	if w <= 0 || h <= 0 {
		tw, th, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			tw, th = 80, 24
		}
		if w <= 0 {
			w = tw
		}
		if h <= 0 {
			// leave a line for the shell prompt
			h = th - 1
		}
	}

	reg, err := loadRegistry(*layoutsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	def, ok := reg.Get(fs.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown layout %q; available: %s\n", fs.Arg(0), strings.Join(reg.Names(), ", "))
		return 1
	}

	lines, err := render.Preview(def, *windows, w, h)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return 0
}
