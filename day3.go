package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

var errInvalidSlope = errors.New("invalid slope")

// cellBlocked marks a tree; anything else is open ground.
const cellBlocked byte = '#'

// grid is a list of rows; every row repeats to the right forever.
type grid [][]byte

// point is a position on the grid.
type point struct {
	X, Y int
}

// slope is the step taken on every move. DY must be positive so that every
// walk leaves the grid.
type slope struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

func (s slope) validate() error {
	if s.DY <= 0 {
		return fmt.Errorf("%w: dy must be > 0, got %d", errInvalidSlope, s.DY)
	}
	return nil
}

func (s slope) String() string { return fmt.Sprintf("(%d,%d)", s.DX, s.DY) }

func parseGrid(lines []string) grid {
	g := make(grid, len(lines))
	for i, line := range lines {
		g[i] = []byte(line)
	}
	return g
}

// wrap brings p.X back inside row p.Y. Empty rows leave p unchanged.
func (g grid) wrap(p point) point {
	w := len(g[p.Y])
	if w == 0 {
		return p
	}
	p.X %= w
	if p.X < 0 {
		p.X += w
	}
	return p
}

// blockedAt reports whether p, already wrapped, is a tree. Empty rows are open.
func (g grid) blockedAt(p point) bool {
	row := g[p.Y]
	return len(row) > 0 && row[p.X] == cellBlocked
}

// travelToExit walks from start by s until it drops off the bottom of g and
// returns the number of blocked cells landed on. Every step wraps X at the
// width of the row it lands on and the next step starts from there. The start
// cell itself is not counted.
func travelToExit(g grid, s slope, start point) (int, error) {
	if err := s.validate(); err != nil {
		return 0, err
	}
	hits := 0
	p := start
	for {
		p = point{X: p.X + s.DX, Y: p.Y + s.DY}
		if p.Y >= len(g) {
			return hits, nil
		}
		if p.Y < 0 {
			continue
		}
		p = g.wrap(p)
		if g.blockedAt(p) {
			hits++
		}
	}
}

// travelSlopes runs travelToExit once per slope from the same start and
// multiplies the hit counts.
func travelSlopes(g grid, slopes []slope, start point) (int, error) {
	counts := make([]int, 0, len(slopes))
	for _, s := range slopes {
		n, err := travelToExit(g, s, start)
		if err != nil {
			return 0, fmt.Errorf("slope %s: %w", s, err)
		}
		counts = append(counts, n)
	}
	return product(counts), nil
}

func solveDay3(ctx context.Context, env *puzzleEnv, args []string) (string, error) {
	variant, err := variantArg(args, "single", "multi")
	if err != nil {
		return "", err
	}

	g := parseGrid(env.lines("3", false))
	var hits int
	switch variant {
	case "multi":
		hits, err = travelSlopes(g, env.cfg.Slopes, point{})
	default:
		hits, err = travelToExit(g, env.cfg.Slope, point{})
	}
	if err != nil {
		return "", err
	}
	return strconv.Itoa(hits), nil
}
