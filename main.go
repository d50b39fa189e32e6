package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Command names.
const (
	cmdSolve = "solve"
	cmdList  = "list"
	cmdHelp  = "help"
)

func main() {
	_ = godotenv.Load()
	log := newLogger(defaultLogLevel)
	if err := run(context.Background(), log, os.Stdout, os.Args[1:]); err != nil {
		log.err(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger, stdout io.Writer, args []string) error {
	if len(args) == 0 {
		printUsage(stdout)
		return nil
	}

	switch args[0] {
	case cmdHelp, "-h", "--help":
		printUsage(stdout)
		return nil
	case cmdList:
		printPuzzles(stdout)
		return nil
	case cmdSolve:
		return runSolve(ctx, log, stdout, args[1:])
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "aoc2020: Advent of Code 2020 solvers")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Usage:")
	_, _ = fmt.Fprintln(w, "  aoc2020 solve [--config PATH] [--input DIR] DAY [ARGS...]")
	_, _ = fmt.Fprintln(w, "  aoc2020 list")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Options:")
	_, _ = fmt.Fprintln(w, "  --config  Path to config.json (default: $AOC_HOME/config.json or ./config.json)")
	_, _ = fmt.Fprintln(w, "  --input   Directory holding dayN.txt input files (overrides input_dir)")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Environment:")
	_, _ = fmt.Fprintln(w, "  AOC_HOME  Directory containing config.json")
	_, _ = fmt.Fprintln(w, "  NO_COLOR  Disable colored output")
}

func printPuzzles(w io.Writer) {
	for _, day := range puzzleDays() {
		p := puzzles[day]
		_, _ = fmt.Fprintf(w, "%-3s %-22s %s\n", day, p.title, p.usage)
	}
}

func runSolve(ctx context.Context, log *logger, stdout io.Writer, args []string) error {
	fs := flag.NewFlagSet(cmdSolve, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		cfgPath  string
		inputDir string
	)
	fs.StringVar(&cfgPath, "config", "", "config path")
	fs.StringVar(&inputDir, "input", "", "input directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: DAY is required", errBadArgument)
	}

	cfg, err := loadConfig(configPath(cfgPath))
	if err != nil {
		return err
	}
	if d := strings.TrimSpace(inputDir); d != "" {
		cfg.InputDir = d
	}
	log.setLevel(cfg.LogLevel)

	day := fs.Arg(0)
	log.debugf("solving day %s: input_dir=%s args=%v", day, cfg.InputDir, fs.Args()[1:])

	start := time.Now()
	out, err := runPuzzle(ctx, &puzzleEnv{cfg: cfg, log: log}, day, fs.Args()[1:])
	if err != nil {
		return err
	}
	log.infof("day %s solved (elapsed %s)", day, time.Since(start).Round(time.Microsecond))
	_, _ = fmt.Fprintln(stdout, out)
	return nil
}
