// Package main implements aoc2020, a CLI that solves Advent of Code 2020
// puzzles from local input files.
//
// # Puzzles
//
//   - Day 1: find the numbers that sum to a target and multiply them
//   - Day 2: count passwords that satisfy their range policy
//   - Day 3: count trees hit while sledding down a wrapped map
//   - Day 4: count passports whose required fields are present and valid
//
// # Usage
//
//	aoc2020 solve [--config PATH] [--input DIR] DAY [ARGS...]
//	aoc2020 list
//
// # Configuration
//
// Configuration is loaded from config.json in the current directory or the
// directory named by the AOC_HOME environment variable. A .env file in the
// working directory is loaded first.
//
// Input for day N is read from <input_dir>/dayN.txt. A missing or unreadable
// input file is logged and treated as empty input.
package main
