package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// maxLineSize bounds a single input line; puzzle inputs are far below it.
const maxLineSize = 1024 * 1024

// readLines reads path and returns its lines without line terminators.
// Empty lines are dropped unless keepBlank is set.
func readLines(path string, keepBlank bool) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" && !keepBlank {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

// loadLines is readLines for solvers: a read failure is logged and reported
// as no lines at all, so an unreadable file looks the same as an empty one.
func loadLines(log *logger, path string, keepBlank bool) []string {
	lines, err := readLines(path, keepBlank)
	if err != nil {
		log.errf("input unavailable: %v", err)
		return nil
	}
	log.debugf("read %d lines from %s", len(lines), path)
	return lines
}

// inputPath returns the input file of a day inside dir.
func inputPath(dir, day string) string {
	return filepath.Join(dir, "day"+day+".txt")
}
