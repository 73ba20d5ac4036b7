// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package replay runs scripted interaction sessions against a
// scatter-plot matrix.
//
// A script has one command per line. Words are split like a shell
// command line and everything after a # is ignored. The commands are
//
//	legend <species>          toggle a species in the legend
//	brush <x0> <y0> <x1> <y1> select a rectangle of the matrix canvas
//	brush clear               clear the selection
//	dblclick                  switch between overview and facets
//	snapshot <file>           write the current SVG to file
package replay

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/aclements/penguinplot/penguins"
	"github.com/aclements/penguinplot/splom"
)

// A Step is one line of a script. Exactly one of Event and Snapshot
// is set.
type Step struct {
	Line     int
	Event    splom.Event
	Snapshot string
}

func (s Step) String() string {
	if s.Event == nil {
		return fmt.Sprintf("%d: snapshot %s", s.Line, s.Snapshot)
	}
	return fmt.Sprintf("%d: %#v", s.Line, s.Event)
}

// Parse reads a script from r.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		words, err := shellquote.Split(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(words) == 0 {
			continue
		}
		step, err := parseStep(words)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		step.Line = line
		steps = append(steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return steps, nil
}

func parseStep(words []string) (Step, error) {
	cmd, args := words[0], words[1:]
	switch cmd {
	case "legend":
		if len(args) != 1 {
			return Step{}, fmt.Errorf("usage: legend <species>")
		}
		sp, err := penguins.ParseSpecies(args[0])
		if err != nil {
			return Step{}, err
		}
		return Step{Event: splom.LegendClick{Species: sp}}, nil

	case "brush":
		if len(args) == 1 && args[0] == "clear" {
			return Step{Event: splom.BrushChange{Phase: splom.BrushEnd}}, nil
		}
		if len(args) != 4 {
			return Step{}, fmt.Errorf("usage: brush <x0> <y0> <x1> <y1> | brush clear")
		}
		var v [4]float64
		for i, a := range args {
			f, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return Step{}, fmt.Errorf("brush: bad coordinate %q", a)
			}
			v[i] = f
		}
		r := splom.Rect{X0: v[0], Y0: v[1], X1: v[2], Y1: v[3]}
		return Step{Event: splom.BrushChange{Phase: splom.BrushEnd, Selection: &r}}, nil

	case "dblclick":
		if len(args) != 0 {
			return Step{}, fmt.Errorf("usage: dblclick")
		}
		return Step{Event: splom.DoubleClick{}}, nil

	case "snapshot":
		if len(args) != 1 {
			return Step{}, fmt.Errorf("usage: snapshot <file>")
		}
		return Step{Snapshot: args[0]}, nil
	}
	return Step{}, fmt.Errorf("unknown command %q", cmd)
}

// Run applies steps to c in order. Snapshot steps call snapshot with
// their path.
func Run(c *splom.Controller, steps []Step, snapshot func(path string) error) error {
	for _, s := range steps {
		if s.Event == nil {
			if err := snapshot(s.Snapshot); err != nil {
				return fmt.Errorf("line %d: %w", s.Line, err)
			}
			continue
		}
		c.Dispatch(s.Event)
	}
	return nil
}
