package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"kochflake/internal/config"
	"kochflake/internal/koch"
	"kochflake/internal/tui"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: koch [flags] [side length [n]]\n\n")
	flag.PrintDefaults()
}

func main() {
	cfg := config.Load()
	format := flag.String("format", "", "output: tui, table, csv, wkt, wkt-lines, geojson, png (default tui on a terminal, table otherwise)")
	viewDepth := flag.Int("depth-view", -1, "depth to export; negative means the max depth")
	out := flag.String("o", "", "output file (stdout by default, required for png)")
	flag.Usage = usage
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	cfg, err := applyArgs(cfg, flag.Args())
	if errors.Is(err, errArgs) {
		fmt.Fprintln(os.Stderr, "Arguments are (side length, n)")
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	side, maxDepth := cfg.SideLength, cfg.MaxDepth

	tree, err := koch.Build(side, maxDepth)
	if err != nil {
		logger.Error("build snowflake", "error", err)
		os.Exit(2)
	}
	logger.Debug("built snowflake", "side", side, "max_depth", maxDepth)

	if *format == "" {
		*format = "table"
		if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			*format = "tui"
		}
	}
	if *format == "tui" {
		runTUI(tree, side, cfg)
		return
	}

	depth := *viewDepth
	if depth < 0 {
		depth = maxDepth
	}
	if *out == "" && *format == "png" {
		logger.Error("png output needs -o")
		os.Exit(2)
	}
	if err := writeOutput(*out, *format, tree, depth, cfg.ImageSize); err != nil {
		logger.Error("export", "format", *format, "error", err)
		os.Exit(1)
	}
}

var errArgs = errors.New("bad arguments")

// applyArgs overrides cfg with the positional side length and depth, then validates the
// result against the configured limits.
func applyArgs(cfg config.Config, args []string) (config.Config, error) {
	if len(args) > 2 {
		return cfg, fmt.Errorf("%w: too many", errArgs)
	}
	if len(args) > 0 {
		f, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: side %q", errArgs, args[0])
		}
		cfg.SideLength = f
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return cfg, fmt.Errorf("%w: n %q", errArgs, args[1])
		}
		cfg.MaxDepth = n
	}
	return cfg, cfg.Validate()
}

// writeOutput exports to path, or to stdout when path is empty.
func writeOutput(path, format string, tree *koch.Node, depth, imageSize int) error {
	if path == "" {
		return export(os.Stdout, format, tree, depth, imageSize)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := export(f, format, tree, depth, imageSize); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

func runTUI(tree *koch.Node, side float64, cfg config.Config) {
	m := tui.New(tree, side, cfg.DepthLimit)
	if cfg.DebugLogPath != "" {
		f, err := tea.LogToFile(cfg.DebugLogPath, "koch")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		m = m.WithLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel})))
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
