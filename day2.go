package main

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var errMalformedPolicy = errors.New("malformed policy line")

// rangePolicy is one "<min>-<max> <char>: <value>" line.
type rangePolicy struct {
	Min   int
	Max   int
	Char  rune
	Value string
}

// rePolicy splits on the first '-', the first space after it and the first
// ':' after that.
var rePolicy = regexp.MustCompile(`^([^-]*)-([^ ]*) ([^:]*):(.*)$`)

func parsePolicy(line string) (rangePolicy, error) {
	m := rePolicy.FindStringSubmatch(line)
	if m == nil {
		return rangePolicy{}, fmt.Errorf("%w: %q", errMalformedPolicy, line)
	}
	lo, err := strconv.Atoi(m[1])
	if err != nil {
		return rangePolicy{}, fmt.Errorf("%w: min %q", errMalformedPolicy, m[1])
	}
	hi, err := strconv.Atoi(m[2])
	if err != nil {
		return rangePolicy{}, fmt.Errorf("%w: max %q", errMalformedPolicy, m[2])
	}
	if utf8.RuneCountInString(m[3]) != 1 {
		return rangePolicy{}, fmt.Errorf("%w: char %q", errMalformedPolicy, m[3])
	}
	ch, _ := utf8.DecodeRuneInString(m[3])
	return rangePolicy{
		Min:   lo,
		Max:   hi,
		Char:  ch,
		Value: strings.TrimPrefix(m[4], " "),
	}, nil
}

// countValid holds when Char occurs between Min and Max times in Value.
func (p rangePolicy) countValid() bool {
	n := strings.Count(p.Value, string(p.Char))
	return n >= p.Min && n <= p.Max
}

// positionValid holds when exactly one of the 1-based positions Min and Max
// holds Char.
func (p rangePolicy) positionValid() bool {
	return p.charAt(p.Min) != p.charAt(p.Max)
}

func (p rangePolicy) charAt(pos int) bool {
	rs := []rune(p.Value)
	if pos < 1 || pos > len(rs) {
		return false
	}
	return rs[pos-1] == p.Char
}

// countValidPolicies counts lines that parse and satisfy valid. Lines that do
// not parse count as invalid.
func countValidPolicies(log *logger, lines []string, valid func(rangePolicy) bool) int {
	count := 0
	for i, line := range lines {
		p, err := parsePolicy(line)
		if err != nil {
			log.debugf("line %d: %v", i+1, err)
			continue
		}
		if valid(p) {
			count++
		}
	}
	return count
}

func solveDay2(ctx context.Context, env *puzzleEnv, args []string) (string, error) {
	variant, err := variantArg(args, "count", "position")
	if err != nil {
		return "", err
	}
	valid := rangePolicy.countValid
	if variant == "position" {
		valid = rangePolicy.positionValid
	}

	lines := env.lines("2", false)
	return strconv.Itoa(countValidPolicies(env.log, lines, valid)), nil
}
