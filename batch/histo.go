/*
 * histo.go, part of molmass.
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

package batch

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Histogram counts weights in equally wide bins.
type Histogram struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

// NewHistogram bins weights into the given number of bins (at least 1),
// spanning from the smallest to the largest weight. weights is not modified.
// It returns nil if there are no weights.
func NewHistogram(weights []float64, bins int) *Histogram {
	if len(weights) == 0 {
		return nil
	}
	if bins < 1 {
		bins = 1
	}
	data := make([]float64, len(weights))
	copy(data, weights)
	sort.Float64s(data) //stat.Histogram wants it sorted
	lo, hi := data[0], data[len(data)-1]
	if hi == lo {
		hi = lo + 1
	}
	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	//the last divider is exclusive, so it must be above the largest weight.
	dividers[bins] = math.Nextafter(dividers[bins], math.Inf(1))
	return &Histogram{
		total:    len(data),
		dividers: dividers,
		histo:    stat.Histogram(nil, dividers, data, nil),
	}
}

// Dividers returns a copy of the bin limits. There is one more divider than bins.
func (H *Histogram) Dividers() []float64 {
	return append([]float64(nil), H.dividers...)
}

// Counts returns a copy of the bin values: counts, or fractions of
// the total if the histogram is normalized.
func (H *Histogram) Counts() []float64 {
	return append([]float64(nil), H.histo...)
}

// Total returns the number of weights binned.
func (H *Histogram) Total() int {
	return H.total
}

// Normalized returns true if the histogram is normalized
func (H *Histogram) Normalized() bool {
	return H.normalized
}

// Normalize turns the counts into fractions of the total.
func (H *Histogram) Normalize() {
	H.normaunnorma(true)
}

// UnNormalize turns fractions back into counts.
func (H *Histogram) UnNormalize() {
	H.normaunnorma(false)
}

func (H *Histogram) normaunnorma(normalize bool) {
	if H.total <= 0 || H.normalized == normalize {
		return
	}
	n := float64(H.total)
	if normalize {
		n = 1 / n
	}
	H.normalized = normalize
	floats.Scale(n, H.histo)
}

// String prints one bin per line, as "lo-hi: value".
func (H *Histogram) String() string {
	lines := make([]string, len(H.histo))
	for i, v := range H.histo {
		lines[i] = fmt.Sprintf("%.2f-%.2f: %g", H.dividers[i], H.dividers[i+1], v)
	}
	return strings.Join(lines, "\n")
}
