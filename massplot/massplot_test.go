/*
 * massplot_test.go, part of molmass.
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

package massplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/rmera/molmass"
)

func TestComposition(t *testing.T) {
	table, err := molmass.NewTable(molmass.DefaultRecords())
	require.NoError(t, err)
	r, err := molmass.Evaluate(table, "C6H12O6")
	require.NoError(t, err)

	p, err := Composition(r, "")
	require.NoError(t, err)
	assert.Equal(t, "Mass composition of C6H12O6", p.Title.Text)
	assert.Equal(t, 3*vg.Millimeter, p.Title.Padding)

	for _, name := range []string{"glucose.png", "glucose.svg"} {
		out := filepath.Join(t.TempDir(), name)
		require.NoError(t, Save(p, out, 12, 8))
		info, err := os.Stat(out)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestWeightHistogram(t *testing.T) {
	_, err := WeightHistogram(nil, 0, "")
	assert.Error(t, err)

	p, err := WeightHistogram([]float64{18.015, 44.009, 58.44, 180.156, 342.297}, 0, "")
	require.NoError(t, err)
	assert.Equal(t, "Molar mass distribution", p.Title.Text)
	out := filepath.Join(t.TempDir(), "hist.png")
	require.NoError(t, Save(p, out, 12, 8))
}

func TestSturges(t *testing.T) {
	assert.Equal(t, 1, sturges(1))
	assert.Equal(t, 2, sturges(2))
	assert.Equal(t, 4, sturges(8))
	assert.Equal(t, 10, sturges(1000))
}
