// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report bundles the penguin charts into a single HTML page.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/aclements/go-moremath/stats"
	"github.com/gomarkdown/markdown"

	"github.com/aclements/penguinplot/penguins"
)

// Report is the content of the page.
type Report struct {
	// Source names the dataset file.
	Source string

	Dataset *penguins.Dataset

	// Heatmap, Scatter and Matrix are the SVG documents of the three
	// charts.
	Heatmap, Scatter, Matrix []byte
}

// Summary returns a markdown summary of the dataset: how many rows
// were kept and dropped and the mean of each measurement by species.
func Summary(r Report) []byte {
	d := r.Dataset
	var b bytes.Buffer
	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "Read %d rows from `%s`. Kept %d and dropped %d (%d with missing values, %d malformed).\n\n",
		d.Rows, r.Source, len(d.Observations), d.Dropped(), d.Missing, d.Malformed)

	groups := penguins.BySpecies(d.Observations)
	species := penguins.SpeciesOf(d.Observations)
	if len(species) == 0 {
		return b.Bytes()
	}

	fmt.Fprintf(&b, "| species | count |")
	for _, v := range penguins.Variables {
		fmt.Fprintf(&b, " mean %s |", v)
	}
	fmt.Fprintf(&b, "\n|---|---:|")
	for range penguins.Variables {
		fmt.Fprintf(&b, "---:|")
	}
	fmt.Fprintf(&b, "\n")
	for _, sp := range species {
		obs := groups[sp]
		fmt.Fprintf(&b, "| %s | %d |", sp, len(obs))
		for _, v := range penguins.Variables {
			fmt.Fprintf(&b, " %.2f |", stats.Mean(penguins.Column(obs, v)))
		}
		fmt.Fprintf(&b, "\n")
	}
	return b.Bytes()
}

// Write writes the HTML page of r to w.
func Write(w io.Writer, r Report) error {
	data := struct {
		Summary                  template.HTML
		Heatmap, Scatter, Matrix template.HTML
	}{
		Summary: template.HTML(markdown.ToHTML(Summary(r), nil, nil)),
		Heatmap: inline(r.Heatmap),
		Scatter: inline(r.Scatter),
		Matrix:  inline(r.Matrix),
	}
	return pageTemplate.Execute(w, data)
}

// inline strips the XML prolog of an SVG document so it can be
// embedded in HTML.
func inline(svg []byte) template.HTML {
	if i := bytes.Index(svg, []byte("<svg")); i >= 0 {
		svg = svg[i:]
	}
	return template.HTML(svg)
}

var pageTemplate = template.Must(template.New("page").Parse(page))

const page = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Palmer penguins</title>
    <style>
body {
  font-family: sans-serif;
  color: #222;
  margin: 2em;
}
table {
  border-spacing: 0;
  border-collapse: collapse;
}
table>tbody>tr>td, table>thead>tr>th {
  padding: 4px 8px;
  border-top: 1px solid #ddd;
}
.chart {
  margin-bottom: 2em;
}
    </style>
  </head>
  <body>
    <h1>Palmer penguins</h1>
    <div id="summary">{{.Summary}}</div>
    <h2>Observations by island and species</h2>
    <div class="chart" id="heatmap-container">{{.Heatmap}}</div>
    <h2>Bill length and depth</h2>
    <div class="chart" id="scatter-container">{{.Scatter}}</div>
    <h2>Scatter-plot matrix</h2>
    <div class="chart" id="scatter-matrix-container">{{.Matrix}}</div>
  </body>
</html>
`
