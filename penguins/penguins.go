// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package penguins reads the Palmer penguins measurements dataset.
//
// The dataset is a delimited file with a header row and one
// observation per line:
//
//	species,island,bill_length_mm,bill_depth_mm,flipper_length_mm,body_mass_g,sex,year
//	Adelie,Torgersen,39.1,18.7,181,3750,male,2007
//
// Missing values are written as a sentinel token (NA by default).
// Rows containing the sentinel in any column are dropped, so every
// Observation returned by this package is complete.
package penguins

import (
	"fmt"
	"math"
	"strings"
)

// Species is a penguin species.
type Species int

const (
	Adelie Species = iota
	Chinstrap
	Gentoo

	numSpecies
)

// AllSpecies lists every species in display order.
var AllSpecies = []Species{Adelie, Chinstrap, Gentoo}

func (s Species) String() string {
	switch s {
	case Adelie:
		return "Adelie"
	case Chinstrap:
		return "Chinstrap"
	case Gentoo:
		return "Gentoo"
	}
	return fmt.Sprintf("Species(%d)", int(s))
}

// ParseSpecies returns the species named name. Matching is
// case-insensitive and ignores anything after the first space, so
// "Adelie Penguin (Pygoscelis adeliae)" parses as Adelie.
func ParseSpecies(name string) (Species, error) {
	word := strings.TrimSpace(name)
	if i := strings.IndexByte(word, ' '); i >= 0 {
		word = word[:i]
	}
	for s := Species(0); s < numSpecies; s++ {
		if strings.EqualFold(word, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown species %q", name)
}

// Sex is the recorded sex of a penguin.
type Sex int

const (
	Female Sex = iota
	Male
)

func (s Sex) String() string {
	switch s {
	case Female:
		return "female"
	case Male:
		return "male"
	}
	return fmt.Sprintf("Sex(%d)", int(s))
}

// ParseSex parses "male" or "female" in any case.
func ParseSex(name string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "female":
		return Female, nil
	case "male":
		return Male, nil
	}
	return 0, fmt.Errorf("unknown sex %q", name)
}

// Observation is one complete row of the dataset.
type Observation struct {
	Species Species
	Island  string
	Sex     Sex

	BillLength    float64 // mm
	BillDepth     float64 // mm
	FlipperLength float64 // mm
	BodyMass      float64 // g

	// Year is the study year, or 0 if the input has no year column.
	Year int
}

// Variable is one of the continuous measurements of an Observation.
type Variable int

const (
	BillLength Variable = iota
	BillDepth
	FlipperLength
	BodyMass
)

// Variables lists the continuous variables in display order.
var Variables = []Variable{BillLength, BillDepth, FlipperLength, BodyMass}

// Name returns the column name of v.
func (v Variable) Name() string {
	switch v {
	case BillLength:
		return "bill_length_mm"
	case BillDepth:
		return "bill_depth_mm"
	case FlipperLength:
		return "flipper_length_mm"
	case BodyMass:
		return "body_mass_g"
	}
	return fmt.Sprintf("Variable(%d)", int(v))
}

func (v Variable) String() string {
	return v.Name()
}

// Value returns the value of v in o.
func (v Variable) Value(o Observation) float64 {
	switch v {
	case BillLength:
		return o.BillLength
	case BillDepth:
		return o.BillDepth
	case FlipperLength:
		return o.FlipperLength
	case BodyMass:
		return o.BodyMass
	}
	return math.NaN()
}

// Complete reports whether none of o's measurements is NaN.
func (o Observation) Complete() bool {
	for _, v := range Variables {
		if math.IsNaN(v.Value(o)) {
			return false
		}
	}
	return true
}

// BySpecies splits obs by species. The result has an entry only for
// species that occur in obs.
func BySpecies(obs []Observation) map[Species][]Observation {
	m := make(map[Species][]Observation)
	for _, o := range obs {
		m[o.Species] = append(m[o.Species], o)
	}
	return m
}

// SpeciesOf returns the species present in obs, in display order.
func SpeciesOf(obs []Observation) []Species {
	var seen [numSpecies]bool
	for _, o := range obs {
		if o.Species >= 0 && o.Species < numSpecies {
			seen[o.Species] = true
		}
	}
	var out []Species
	for _, s := range AllSpecies {
		if seen[s] {
			out = append(out, s)
		}
	}
	return out
}
