/*
 * batch.go, part of molmass.
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

// Package batch weighs many formulas at once against a shared table,
// and summarizes the results.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/rmera/molmass"
)

// Result is the outcome of one formula. Exactly one of Report and Err is nil.
type Result struct {
	Index  int //position of the formula in the input
	Input  string
	Report *molmass.Report
	Err    error
}

// Run evaluates all inputs against table using at most workers goroutines
// (GOMAXPROCS if workers < 1). Results come back in input order.
// Failing formulas don't stop the others; their errors are in the
// results. The only error Run returns is the context's.
func Run(ctx context.Context, table molmass.Looker, inputs []string, workers int) ([]Result, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(-1)
	}
	results := make([]Result, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, in := range inputs {
		i, in := i, in //per-iteration copies (go1.21 loop semantics)
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := molmass.Evaluate(table, in)
			//each goroutine writes only its own slot.
			results[i] = Result{Index: i, Input: in, Report: r, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Weights returns the weights of the successful results, in order.
func Weights(results []Result) []float64 {
	ret := make([]float64, 0, len(results))
	for _, v := range results {
		if v.Err == nil {
			ret = append(ret, v.Report.Compound.Weight)
		}
	}
	return ret
}

// Summary gives statistics over the weights of a batch.
// Everything but N and Failed is 0 if no formula succeeded.
type Summary struct {
	N      int //successful formulas
	Failed int
	Mean   float64
	StdDev float64 //sample standard deviation, 0 for a single formula
	Min    float64
	Max    float64
}

func (S Summary) String() string {
	return fmt.Sprintf("%d valid, %d invalid. Mean weight %.2f (sd %.2f), min %.2f, max %.2f", S.N, S.Failed, S.Mean, S.StdDev, S.Min, S.Max)
}

// Summarize computes a Summary for results.
func Summarize(results []Result) Summary {
	w := Weights(results)
	S := Summary{N: len(w), Failed: len(results) - len(w)}
	if len(w) == 0 {
		return S
	}
	S.Mean = stat.Mean(w, nil)
	if len(w) > 1 {
		S.StdDev = stat.StdDev(w, nil)
	}
	S.Min = floats.Min(w)
	S.Max = floats.Max(w)
	return S
}

// CountMatrix returns a matrix with one row per successful result (in order)
// and one column per element present in any of them (sorted by symbol).
// Each entry is the number of atoms of that element in that compound.
// It returns nil and no elements if no result succeeded.
func CountMatrix(results []Result) (*mat.Dense, []*molmass.Element) {
	cols := make(map[*molmass.Element]int)
	var elements []*molmass.Element
	var rows []*molmass.Compound
	for _, v := range results {
		if v.Err != nil {
			continue
		}
		rows = append(rows, v.Report.Compound)
		for _, p := range v.Report.Compound.Parts {
			if _, ok := cols[p.Element]; !ok {
				cols[p.Element] = 0
				elements = append(elements, p.Element)
			}
		}
	}
	if len(rows) == 0 {
		return nil, nil
	}
	sort.Slice(elements, func(i, j int) bool { return elements[i].Symbol() < elements[j].Symbol() })
	for i, e := range elements {
		cols[e] = i
	}
	M := mat.NewDense(len(rows), len(elements), nil)
	for i, c := range rows {
		for _, p := range c.Parts {
			M.Set(i, cols[p.Element], float64(p.Count))
		}
	}
	return M, elements
}

// MatrixWeights returns counts·w, where w is the vector of atomic weights
// of elements. With the output of CountMatrix, that is the weight of each
// compound.
func MatrixWeights(counts *mat.Dense, elements []*molmass.Element) *mat.VecDense {
	w := make([]float64, len(elements))
	for i, e := range elements {
		w[i] = e.Weight()
	}
	r, _ := counts.Dims()
	ret := mat.NewVecDense(r, nil)
	ret.MulVec(counts, mat.NewVecDense(len(w), w))
	return ret
}
