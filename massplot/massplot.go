/*
 * massplot.go, part of molmass.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package massplot draws mass compositions and weight distributions.
package massplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rmera/molmass"
)

// Composition returns a bar chart with the mass percentage of each
// element in the compound of R, in the order the elements appear in the formula.
func Composition(R *molmass.Report, title string) (*plot.Plot, error) {
	if title == "" {
		title = fmt.Sprintf("Mass composition of %s", R.Input)
	}
	fr := R.Compound.Fractions()
	vals := make(plotter.Values, len(fr))
	labels := make([]string, len(fr))
	for i, v := range fr {
		vals[i] = 100 * v
		labels[i] = R.Compound.Parts[i].Element.Symbol()
	}
	p := basicPlot(title, "Element", "Mass %")
	bars, err := plotter.NewBarChart(vals, vg.Points(20))
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = color.RGBA{R: 40, G: 90, B: 160, A: 255}
	p.Add(bars)
	p.NominalX(labels...)
	p.Y.Min = 0
	p.Y.Max = 100
	return p, nil
}

// WeightHistogram returns a histogram of weights with the given number of bins
// (if bins < 1, a number is chosen from the number of weights).
func WeightHistogram(weights []float64, bins int, title string) (*plot.Plot, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("WeightHistogram: no weights to plot")
	}
	if title == "" {
		title = "Molar mass distribution"
	}
	if bins < 1 {
		bins = sturges(len(weights))
	}
	p := basicPlot(title, "Molar mass (g/mol)", "Formulas")
	h, err := plotter.NewHist(plotter.Values(weights), bins)
	if err != nil {
		return nil, err
	}
	h.FillColor = color.RGBA{R: 160, G: 60, B: 40, A: 255}
	p.Add(h)
	return p, nil
}

// Save writes p to filename, with the format taken from its
// extension (png, svg, pdf, eps...). width and height are in cm.
func Save(p *plot.Plot, filename string, width, height float64) error {
	return p.Save(vg.Length(width)*vg.Centimeter, vg.Length(height)*vg.Centimeter, filename)
}

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

// Sturges' rule for the number of bins.
func sturges(n int) int {
	b := 1
	for m := n; m > 1; m /= 2 {
		b++
	}
	return b
}
