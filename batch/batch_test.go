/*
 * batch_test.go, part of molmass.
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
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/rmera/molmass"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTable(t *testing.T) *molmass.Table {
	t.Helper()
	table, err := molmass.NewTable(molmass.DefaultRecords())
	require.NoError(t, err)
	return table
}

func TestRun(t *testing.T) {
	table := newTable(t)
	inputs := []string{"H2O", "C6H12O6", "Xx2", "123", "NaCl", "CO2"}
	results, err := Run(context.Background(), table, inputs, 3)
	require.NoError(t, err)
	require.Len(t, results, len(inputs))
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, inputs[i], r.Input)
		assert.True(t, (r.Err == nil) != (r.Report == nil), "exactly one of Err and Report must be set for %q", r.Input)
	}
	assert.InDelta(t, 18.015, results[0].Report.Compound.Weight, 1e-9)
	assert.True(t, errors.Is(results[2].Err, molmass.ErrUnknownSymbol))
	assert.True(t, errors.Is(results[3].Err, molmass.ErrEmptyFormula))
}

func TestRunManyWorkers(t *testing.T) {
	table := newTable(t)
	inputs := make([]string, 500)
	for i := range inputs {
		inputs[i] = fmt.Sprintf("C%dH%d", i+1, 2*i+2)
	}
	results, err := Run(context.Background(), table, inputs, 0)
	require.NoError(t, err)
	for i, r := range results {
		require.NoError(t, r.Err)
		want := float64(i+1)*12.011 + float64(2*i+2)*1.008
		assert.InDelta(t, want, r.Report.Compound.Weight, 1e-9)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := Run(ctx, newTable(t), []string{"H2O", "CO2"}, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}

func TestSummarize(t *testing.T) {
	results, err := Run(context.Background(), newTable(t), []string{"H2", "O2", "Zz"}, 2)
	require.NoError(t, err)
	s := Summarize(results)
	assert.Equal(t, 2, s.N)
	assert.Equal(t, 1, s.Failed)
	assert.InDelta(t, (2.016+31.998)/2, s.Mean, 1e-9)
	assert.InDelta(t, 2.016, s.Min, 1e-9)
	assert.InDelta(t, 31.998, s.Max, 1e-9)
	assert.Greater(t, s.StdDev, 0.0)
	assert.Contains(t, s.String(), "2 valid, 1 invalid")

	empty := Summarize([]Result{{Input: "Zz", Err: errors.New("no")}})
	assert.Equal(t, Summary{Failed: 1}, empty)
}

func TestCountMatrix(t *testing.T) {
	inputs := []string{"H2O", "CH3COOH", "Qq", "NaCl"}
	results, err := Run(context.Background(), newTable(t), inputs, 2)
	require.NoError(t, err)
	M, elements := CountMatrix(results)
	require.NotNil(t, M)
	r, c := M.Dims()
	assert.Equal(t, 3, r)
	symbols := make([]string, len(elements))
	for i, e := range elements {
		symbols[i] = e.Symbol()
	}
	assert.Equal(t, []string{"C", "Cl", "H", "Na", "O"}, symbols)
	assert.Equal(t, 5, c)
	//row 1 is acetic acid: C2 H4 O2
	assert.Equal(t, []float64{2, 0, 4, 0, 2}, []float64{M.At(1, 0), M.At(1, 1), M.At(1, 2), M.At(1, 3), M.At(1, 4)})

	w := MatrixWeights(M, elements)
	good := Weights(results)
	require.Equal(t, len(good), w.Len())
	for i, v := range good {
		assert.InDelta(t, v, w.AtVec(i), 1e-9)
	}

	M, elements = CountMatrix(results[2:3])
	assert.Nil(t, M)
	assert.Nil(t, elements)
}
