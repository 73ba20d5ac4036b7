// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package penguins

import (
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// Table returns obs as a go-gg table. Categorical fields become
// string columns named after the dataset columns and measurements
// become float64 columns.
func Table(obs []Observation) *table.Table {
	species := make([]string, len(obs))
	islands := make([]string, len(obs))
	sexes := make([]string, len(obs))
	for i, o := range obs {
		species[i] = o.Species.String()
		islands[i] = o.Island
		sexes[i] = o.Sex.String()
	}

	tab := new(table.Builder).
		Add("species", species).
		Add("island", islands).
		Add("sex", sexes)
	for _, v := range Variables {
		tab.Add(v.Name(), Column(obs, v))
	}
	return tab.Done()
}

// Column returns the values of v in obs.
func Column(obs []Observation, v Variable) []float64 {
	col := make([]float64, len(obs))
	for i, o := range obs {
		col[i] = v.Value(o)
	}
	return col
}

// Extent returns the minimum and maximum of v over obs, ignoring NaN
// values. ok is false if there are no values.
func Extent(obs []Observation, v Variable) (min, max float64, ok bool) {
	xs := make([]float64, 0, len(obs))
	for _, o := range obs {
		if x := v.Value(o); !math.IsNaN(x) {
			xs = append(xs, x)
		}
	}
	if len(xs) == 0 {
		return 0, 0, false
	}
	min, max = stats.Bounds(xs)
	return min, max, true
}
