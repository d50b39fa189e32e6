package main

import (
	"context"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// fieldRecord is one passport: field key to value.
type fieldRecord map[string]string

// fieldRules maps every required key to the predicate its value must pass.
type fieldRules map[string]func(string) bool

var (
	reHeight    = regexp.MustCompile(`^(\d+)(cm|in)$`)
	reHairColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	rePassport  = regexp.MustCompile(`^[0-9]{9}$`)
	reYear      = regexp.MustCompile(`^[0-9]{4}$`)
)

var eyeColors = []string{"amb", "blu", "brn", "gry", "grn", "hzl", "oth"}

// requiredFields excludes cid, which is optional.
var requiredFields = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}

// strictRules checks every required field's value.
var strictRules = fieldRules{
	"byr": yearBetween(1920, 2002),
	"iyr": yearBetween(2010, 2020),
	"eyr": yearBetween(2020, 2030),
	"hgt": validHeight,
	"hcl": reHairColor.MatchString,
	"ecl": func(v string) bool { return slices.Contains(eyeColors, v) },
	"pid": rePassport.MatchString,
}

// presentRules only asks for the required fields to be there.
var presentRules = func() fieldRules {
	rules := make(fieldRules, len(requiredFields))
	for _, f := range requiredFields {
		rules[f] = func(string) bool { return true }
	}
	return rules
}()

func between(v, lo, hi int) bool { return v >= lo && v <= hi }

func yearBetween(lo, hi int) func(string) bool {
	return func(v string) bool {
		if !reYear.MatchString(v) {
			return false
		}
		n, _ := strconv.Atoi(v)
		return between(n, lo, hi)
	}
}

// validHeight accepts 150-193cm or 59-76in. A height without unit is invalid.
func validHeight(v string) bool {
	m := reHeight.FindStringSubmatch(v)
	if m == nil {
		return false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	switch m[2] {
	case "cm":
		return between(n, 150, 193)
	case "in":
		return between(n, 59, 76)
	}
	return false
}

// validate reports whether every key in rules is present in r and passes its
// predicate. Keys not in rules are ignored.
func (r fieldRecord) validate(rules fieldRules) bool {
	for key := range rules {
		if _, ok := r[key]; !ok {
			return false
		}
	}
	for key, valid := range rules {
		if !valid(r[key]) {
			return false
		}
	}
	return true
}

// filterValid keeps the records accepted by valid, in order.
func filterValid(records []fieldRecord, valid func(fieldRecord) bool) []fieldRecord {
	var out []fieldRecord
	for _, r := range records {
		if valid(r) {
			out = append(out, r)
		}
	}
	return out
}

// parseRecords groups lines into records. Empty lines separate records, so
// lines must be read with blanks kept. A token without ':' is ignored and a
// repeated key keeps its last value.
func parseRecords(lines []string) []fieldRecord {
	var (
		records []fieldRecord
		cur     []string
	)
	flush := func() {
		if len(cur) == 0 {
			return
		}
		records = append(records, parseRecord(strings.Join(cur, " ")))
		cur = cur[:0]
	}
	for _, line := range lines {
		if line == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return records
}

func parseRecord(text string) fieldRecord {
	r := fieldRecord{}
	for _, tok := range strings.Fields(text) {
		key, value, ok := strings.Cut(tok, ":")
		if !ok {
			continue
		}
		r[key] = value
	}
	return r
}

func solveDay4(ctx context.Context, env *puzzleEnv, args []string) (string, error) {
	variant, err := variantArg(args, "strict", "present")
	if err != nil {
		return "", err
	}
	rules := strictRules
	if variant == "present" {
		rules = presentRules
	}

	records := parseRecords(env.lines("4", true))
	valid := filterValid(records, func(r fieldRecord) bool { return r.validate(rules) })
	env.log.debugf("day 4: %d of %d records valid (%s)", len(valid), len(records), variant)
	return strconv.Itoa(len(valid)), nil
}
