package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/stacktile/geometry"
	"github.com/1broseidon/stacktile/layouts"
)

func printLayoutUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  stacktile layout list [--json] [--query Q]")
	fmt.Fprintln(w, "  stacktile layout show <layout>")
	fmt.Fprintln(w, "  stacktile layout apply [--windows N] [--width W] [--height H] [--json] <layout>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'stacktile layout <command> --help' for command-specific options.")
}

func runLayout(args []string) int {
	if len(args) == 0 {
		printLayoutUsage(os.Stderr)
		return 2
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printLayoutUsage(os.Stdout)
		return 0
	}

	switch args[0] {
	case "list":
		return runLayoutList(args[1:])
	case "show":
		return runLayoutShow(args[1:])
	case "apply":
		return runLayoutApply(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown layout command: %s\n\n", args[0])
		printLayoutUsage(os.Stderr)
		return 2
	}
}

func runLayoutList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: stacktile layout list [--json] [--query Q]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List available layouts in cycling order.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	jsonOut := fs.Bool("json", false, "Output full layout definitions as JSON")
	query := fs.String("query", "", "Fuzzy-filter layouts by name")
	layoutsPath := fs.String("layouts", "", "Layouts file path (default: ~/.config/stacktile/layouts.yaml)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "layout list takes no arguments")
		fs.Usage()
		return 2
	}

	reg, err := loadRegistry(*layoutsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	names := reg.Search(*query)
	if *jsonOut {
		type defJSON struct {
			Name               string `json:"name"`
			ColumnType         string `json:"column_type"`
			Flipped            string `json:"flipped"`
			Rotation           string `json:"rotation"`
			MainWindowCount    int    `json:"main_window_count"`
			MainSize           string `json:"main_size"`
			MainSplit          string `json:"main_split"`
			StackSplit         string `json:"stack_split"`
			ReserveColumnSpace string `json:"reserve_column_space"`
			BalanceStacks      bool   `json:"balance_stacks"`
		}
		defs := make([]defJSON, 0, len(names))
		for _, name := range names {
			def, ok := reg.Get(name)
			if !ok {
				continue
			}
			defs = append(defs, defJSON{
				Name:               def.Name,
				ColumnType:         string(def.ColumnType),
				Flipped:            string(def.Flipped),
				Rotation:           string(def.Rotation),
				MainWindowCount:    def.MainWindowCount,
				MainSize:           def.MainSize.String(),
				MainSplit:          string(def.MainSplit),
				StackSplit:         string(def.StackSplit),
				ReserveColumnSpace: string(def.ReserveColumnSpace),
				BalanceStacks:      def.BalanceStacks,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(defs); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	for _, name := range names {
		fmt.Printf("- %s\n", name)
	}
	return 0
}

func runLayoutShow(args []string) int {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: stacktile layout show <layout>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Print a layout definition as YAML, ready to paste into a layouts file.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	layoutsPath := fs.String("layouts", "", "Layouts file path (default: ~/.config/stacktile/layouts.yaml)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "layout show requires <layout>")
		fs.Usage()
		return 2
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

	data, err := yaml.Marshal(def)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	os.Stdout.Write(data)
	return 0
}

func runLayoutApply(args []string) int {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: stacktile layout apply [--windows N] [--width W] [--height H] [--json] <layout>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Compute the window rectangles a layout produces, in canonical window order.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	windows := fs.Int("windows", 4, "Number of windows to lay out")
	width := fs.Int("width", 1920, "Workspace width in pixels")
	height := fs.Int("height", 1080, "Workspace height in pixels")
	jsonOut := fs.Bool("json", false, "Output rectangles as JSON")
	layoutsPath := fs.String("layouts", "", "Layouts file path (default: ~/.config/stacktile/layouts.yaml)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "layout apply requires <layout>")
		fs.Usage()
		return 2
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

	workspace := geometry.Rect{Width: *width, Height: *height}
	rects, err := layouts.Apply(def, *windows, workspace)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *jsonOut {
		type rectJSON struct {
			X      int `json:"x"`
			Y      int `json:"y"`
			Width  int `json:"width"`
			Height int `json:"height"`
		}
		out := make([]rectJSON, len(rects))
		for i, r := range rects {
			out[i] = rectJSON{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	for i, r := range rects {
		fmt.Printf("%2d: x=%-5d y=%-5d w=%-5d h=%d\n", i, r.X, r.Y, r.Width, r.Height)
	}
	return 0
}
