package main

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

var (
	errUnknownDay  = errors.New("unknown day")
	errBadArgument = errors.New("bad argument")
)

// puzzleEnv is what a solver gets to work with for one run.
type puzzleEnv struct {
	cfg appConfig
	log *logger
}

// lines loads the day's input through loadLines.
func (e *puzzleEnv) lines(day string, keepBlank bool) []string {
	return loadLines(e.log, inputPath(e.cfg.InputDir, day), keepBlank)
}

// solverFunc runs one puzzle and returns the text to print.
type solverFunc func(ctx context.Context, env *puzzleEnv, args []string) (string, error)

type puzzle struct {
	title string
	usage string
	solve solverFunc
}

// puzzles is keyed by day number as typed on the command line.
var puzzles = map[string]puzzle{
	"1": {title: "Report Repair", usage: "[MAX_TERMS]", solve: solveDay1},
	"2": {title: "Password Philosophy", usage: "[count|position]", solve: solveDay2},
	"3": {title: "Toboggan Trajectory", usage: "[single|multi]", solve: solveDay3},
	"4": {title: "Passport Processing", usage: "[strict|present]", solve: solveDay4},
}

// puzzleDays returns the registered days in numeric order.
func puzzleDays() []string {
	days := make([]string, 0, len(puzzles))
	for d := range puzzles {
		days = append(days, d)
	}
	slices.SortFunc(days, func(a, b string) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return strings.Compare(a, b)
	})
	return days
}

// runPuzzle looks up day and runs its solver.
func runPuzzle(ctx context.Context, env *puzzleEnv, day string, args []string) (string, error) {
	p, ok := puzzles[strings.TrimPrefix(day, "day")]
	if !ok {
		return "", fmt.Errorf("%w: %q", errUnknownDay, day)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p.solve(ctx, env, args)
}

// variantArg returns args[0] when it is one of allowed, the first allowed
// value when args is empty, and errBadArgument otherwise.
func variantArg(args []string, allowed ...string) (string, error) {
	if len(args) == 0 {
		return allowed[0], nil
	}
	v := strings.ToLower(strings.TrimSpace(args[0]))
	if !slices.Contains(allowed, v) {
		return "", fmt.Errorf("%w: %q (want one of %s)", errBadArgument, args[0], strings.Join(allowed, ", "))
	}
	return v, nil
}

// product multiplies xs together. The product of nothing is 1.
func product[T constraints.Integer](xs []T) T {
	p := T(1)
	for _, x := range xs {
		p *= x
	}
	return p
}
