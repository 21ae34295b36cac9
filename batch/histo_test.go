/*
 * histo_test.go, part of molmass.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogram(t *testing.T) {
	assert.Nil(t, NewHistogram(nil, 3))

	w := []float64{180.156, 18.015, 58.44, 44.009, 342.297, 18.015}
	H := NewHistogram(w, 3)
	require.NotNil(t, H)
	assert.Equal(t, 18.015, w[1], "input must not be sorted in place")
	assert.Equal(t, 6, H.Total())
	assert.Len(t, H.Dividers(), 4)
	assert.Equal(t, []float64{4, 1, 1}, H.Counts())
	assert.Contains(t, H.String(), "18.02-")

	H.Normalize()
	H.Normalize()
	assert.True(t, H.Normalized())
	assert.InDelta(t, 1.0, H.Counts()[0]+H.Counts()[1]+H.Counts()[2], 1e-12)
	H.UnNormalize()
	assert.InDeltaSlice(t, []float64{4, 1, 1}, H.Counts(), 1e-12)
}

func TestHistogramSingleValue(t *testing.T) {
	H := NewHistogram([]float64{18.015, 18.015}, 0)
	require.NotNil(t, H)
	assert.Equal(t, []float64{2}, H.Counts())
}
