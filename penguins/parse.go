// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package penguins

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DefaultMissing is the token the dataset uses for a missing value.
const DefaultMissing = "NA"

// ErrMissingColumn is returned when the header lacks a required
// column.
var ErrMissingColumn = errors.New("missing required column")

// Options controls how a dataset is read. The zero Options reads a
// comma-separated file with NA as the missing-value token.
type Options struct {
	// Comma is the field delimiter. If 0, it is ','.
	Comma rune

	// Missing is the missing-value token. If "", it is
	// DefaultMissing.
	Missing string

	// Strict makes malformed rows (a measurement that is not a
	// number, an unknown species or sex) an error instead of
	// silently dropping them.
	Strict bool
}

func (o Options) missing() string {
	if o.Missing == "" {
		return DefaultMissing
	}
	return o.Missing
}

// A Dataset is the result of reading a penguins file.
type Dataset struct {
	Observations []Observation

	// Rows is the number of data rows read, not counting the
	// header.
	Rows int

	// Missing and Malformed count the rows dropped because they
	// contained a missing value or failed type coercion.
	Missing, Malformed int
}

// Dropped returns the total number of rows that were filtered out.
func (d *Dataset) Dropped() int {
	return d.Missing + d.Malformed
}

// required lists the columns every input must have.
var required = []string{
	"species", "island",
	"bill_length_mm", "bill_depth_mm", "flipper_length_mm", "body_mass_g",
	"sex",
}

// Parse reads a delimited penguins file from r and returns its
// complete observations.
func Parse(r io.Reader, opts Options) ([]Observation, error) {
	ds, err := ReadDataset(r, opts)
	if err != nil {
		return nil, err
	}
	return ds.Observations, nil
}

// Load reads the penguins file at path. The format is chosen by the
// file extension: .tsv and .tab are tab-separated, .xlsx is read from
// the first sheet of the workbook and anything else is
// comma-separated. Each call reads the file afresh.
func Load(path string, opts Options) ([]Observation, error) {
	ds, err := LoadDataset(path, opts)
	if err != nil {
		return nil, err
	}
	return ds.Observations, nil
}

// LoadDataset is like Load, but also returns row accounting.
func LoadDataset(path string, opts Options) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return loadXLSX(path, opts)
	case ".tsv", ".tab":
		if opts.Comma == 0 {
			opts.Comma = '\t'
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()
	ds, err := ReadDataset(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// ReadDataset is like Parse, but also returns row accounting.
func ReadDataset(r io.Reader, opts Options) (*Dataset, error) {
	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return readRecords(cr.Read, opts)
}

func loadXLSX(path string, opts Options) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%s: reading sheet %s: %w", path, sheets[0], err)
	}
	next := func() ([]string, error) {
		if len(rows) == 0 {
			return nil, io.EOF
		}
		row := rows[0]
		rows = rows[1:]
		return row, nil
	}
	ds, err := readRecords(next, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// columns maps a header onto field indexes.
type columns struct {
	species, island, sex                     int
	billLength, billDepth, flipper, bodyMass int
	year                                     int // -1 if absent
}

func mapHeader(header []string) (columns, error) {
	idx := make(map[string]int)
	for i, name := range header {
		// Spreadsheets exported with a BOM keep it on the
		// first header cell.
		name = strings.TrimPrefix(name, "\ufeff")
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return columns{}, fmt.Errorf("%w %q (have %v)", ErrMissingColumn, name, header)
		}
	}
	c := columns{
		species:    idx["species"],
		island:     idx["island"],
		sex:        idx["sex"],
		billLength: idx["bill_length_mm"],
		billDepth:  idx["bill_depth_mm"],
		flipper:    idx["flipper_length_mm"],
		bodyMass:   idx["body_mass_g"],
		year:       -1,
	}
	if i, ok := idx["year"]; ok {
		c.year = i
	}
	return c, nil
}

func readRecords(next func() ([]string, error), opts Options) (*Dataset, error) {
	header, err := next()
	if err == io.EOF {
		return nil, fmt.Errorf("empty input: no header row")
	} else if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	cols, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	ds := new(Dataset)
	missing := opts.missing()
	for line := 2; ; line++ {
		rec, err := next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		ds.Rows++

		values := make([]interface{}, len(header))
		complete := len(rec) >= len(header)
		for i := range values {
			if i >= len(rec) {
				break
			}
			field := strings.TrimSpace(rec[i])
			if field == missing {
				complete = false
				break
			}
			values[i] = autoType(field)
			if values[i] == nil {
				complete = false
				break
			}
		}
		if !complete {
			ds.Missing++
			continue
		}

		o, err := coerce(values, cols)
		if err != nil {
			if opts.Strict {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			ds.Malformed++
			continue
		}
		ds.Observations = append(ds.Observations, o)
	}
	return ds, nil
}

// autoType infers the type of a field: nil for an empty field, a
// finite float64 for a number (NaN counts as empty and infinities
// stay strings), a bool for true or false, and the string otherwise.
func autoType(field string) interface{} {
	switch field {
	case "":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if f, err := strconv.ParseFloat(field, 64); err == nil {
		switch {
		case math.IsNaN(f):
			return nil
		case math.IsInf(f, 0):
			return field
		}
		return f
	}
	return field
}

func coerce(values []interface{}, c columns) (Observation, error) {
	var o Observation
	var err error

	str := func(i int) string {
		return fmt.Sprint(values[i])
	}
	num := func(i int, name string) float64 {
		if err != nil {
			return 0
		}
		f, ok := values[i].(float64)
		if !ok {
			err = fmt.Errorf("%s: %q is not a number", name, str(i))
		}
		return f
	}

	if o.Species, err = ParseSpecies(str(c.species)); err != nil {
		return o, err
	}
	if o.Sex, err = ParseSex(str(c.sex)); err != nil {
		return o, err
	}
	o.Island = str(c.island)
	o.BillLength = num(c.billLength, "bill_length_mm")
	o.BillDepth = num(c.billDepth, "bill_depth_mm")
	o.FlipperLength = num(c.flipper, "flipper_length_mm")
	o.BodyMass = num(c.bodyMass, "body_mass_g")
	if err != nil {
		return o, err
	}
	if c.year >= 0 {
		if y, ok := values[c.year].(float64); ok {
			o.Year = int(y)
		}
	}
	return o, nil
}
