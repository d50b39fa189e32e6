package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// parseNumbers turns lines into integers, skipping lines that do not parse
// and zeros.
func parseNumbers(lines []string) []int {
	numbers := make([]int, 0, len(lines))
	for _, line := range lines {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n == 0 {
			continue
		}
		numbers = append(numbers, n)
	}
	return numbers
}

// findSumTerms returns the first termsToFind numbers, taken at increasing
// indexes, that add up to target. Candidates are tried left to right and the
// search stops at the first hit. Only positive terms are found.
func findSumTerms(numbers []int, termsToFind, target int) ([]int, bool) {
	if termsToFind <= 0 || termsToFind > len(numbers) {
		return nil, false
	}
	if termsToFind == 1 {
		for _, n := range numbers {
			if n == target {
				return []int{target}, true
			}
		}
		return nil, false
	}

	for i, term := range numbers {
		sub := target - term
		if sub <= 0 {
			continue
		}

		// Anything above sub can never be part of the rest.
		var rest []int
		for _, n := range numbers[i+1:] {
			if n <= sub {
				rest = append(rest, n)
			}
		}
		if len(rest) == 0 {
			continue
		}

		partners, ok := findSumTerms(rest, termsToFind-1, sub)
		if !ok {
			continue
		}
		return append([]int{term}, partners...), true
	}
	return nil, false
}

// solveSum multiplies the terms found by findSumTerms.
func solveSum(numbers []int, terms, target int) (int, bool) {
	found, ok := findSumTerms(numbers, terms, target)
	if !ok {
		return 0, false
	}
	return product(found), true
}

// solveForMultipleTerms reports one line per term count from 1 to maxTerms
// for which a solution exists.
func solveForMultipleTerms(numbers []int, maxTerms, target int) string {
	var out []string
	for k := 1; k <= maxTerms; k++ {
		p, ok := solveSum(numbers, k, target)
		if !ok {
			continue
		}
		out = append(out, fmt.Sprintf("%d Terms: %d", k, p))
	}
	return strings.Join(out, "\n")
}

func solveDay1(ctx context.Context, env *puzzleEnv, args []string) (string, error) {
	maxTerms := env.cfg.MaxTerms
	if len(args) > 0 {
		n, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil || n <= 0 {
			return "", fmt.Errorf("%w: max terms %q must be a positive integer", errBadArgument, args[0])
		}
		maxTerms = n
	}

	numbers := parseNumbers(env.lines("1", false))
	env.log.debugf("day 1: %d numbers, target=%d, maxTerms=%d", len(numbers), env.cfg.SumTarget, maxTerms)
	return solveForMultipleTerms(numbers, maxTerms, env.cfg.SumTarget), nil
}
