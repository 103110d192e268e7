package main

import (
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/stacktile/layouts"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "layout":
		os.Exit(runLayout(os.Args[2:]))
	case "preview":
		os.Exit(runPreview(os.Args[2:]))
	case "demo":
		os.Exit(runDemo(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: stacktile <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  layout list         List available layouts")
	fmt.Fprintln(w, "  layout show         Show a layout definition")
	fmt.Fprintln(w, "  layout apply        Compute window rectangles for a layout")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  preview             Render a layout as ASCII art")
	fmt.Fprintln(w, "  demo                Interactive layout explorer")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start the MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  help                Show this help")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Custom layouts are read from ~/.config/stacktile/layouts.yaml;")
	fmt.Fprintln(w, "pass --layouts PATH to any command to use a different file.")
}

// loadRegistry loads the built-in plus user layouts, honoring an
// explicit layouts file path when given.
func loadRegistry(path string) (*layouts.Registry, error) {
	if path != "" {
		return layouts.LoadFromPath(path)
	}
	return layouts.Load()
}
