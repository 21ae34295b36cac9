/*
 * repl_test.go, part of molmass.
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

package cli

import (
	"bytes"
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/rmera/molmass"
	"github.com/rmera/molmass/internal/config"
)

// scriptReader hands out lines, then io.EOF. A nil-string entry stands
// for a Ctrl-C.
type scriptReader struct {
	lines []*string
}

func script(lines ...string) *scriptReader {
	sr := new(scriptReader)
	for i := range lines {
		if lines[i] == "^C" {
			sr.lines = append(sr.lines, nil)
			continue
		}
		sr.lines = append(sr.lines, &lines[i])
	}
	return sr
}

func (sr *scriptReader) Readline() (string, error) {
	if len(sr.lines) == 0 {
		return "", io.EOF
	}
	l := sr.lines[0]
	sr.lines = sr.lines[1:]
	if l == nil {
		return "", readline.ErrInterrupt
	}
	return *l, nil
}

func testSession(t *testing.T) (*session, *bytes.Buffer, *bytes.Buffer, *printer) {
	t.Helper()
	table, err := molmass.NewTable(molmass.DefaultRecords())
	require.NoError(t, err)
	s := &session{
		cfg:    &config.Config{Precision: 2, Output: config.OutputText},
		logger: zaptest.NewLogger(t),
		table:  table,
		source: "built-in",
	}
	var out, errw bytes.Buffer
	return s, &out, &errw, newPrinter(&out, &errw, s.cfg)
}

func TestREPLLoop(t *testing.T) {
	s, out, errw, p := testSession(t)
	err := replLoop(script("C6H12O6", "", "^C", "Xx", "NaCl\r\n"), s, p)
	require.NoError(t, err)
	want := "The atomic weight of C6H12O6 is 180.16\nThe elements are Carbon, Hydrogen and Oxygen\n" +
		"The atomic weight of NaCl is 58.44\nThe elements are Chlorine and Sodium\n"
	assert.Equal(t, want, out.String())
	assert.Equal(t, "Xx: no such element\nXx: not a valid compound\n", errw.String())
}

func TestREPLDotCommands(t *testing.T) {
	s, out, _, p := testSession(t)
	err := replLoop(script(".help", ".table", ".quit", "H2O"), s, p)
	require.NoError(t, err)
	assert.Contains(t, out.String(), ".quit")
	assert.Contains(t, out.String(), "elements from built-in")
	assert.NotContains(t, out.String(), "The atomic weight")
}

func TestREPLReadError(t *testing.T) {
	s, _, _, p := testSession(t)
	err := replLoop(failingReader{}, s, p)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

type failingReader struct{}

func (failingReader) Readline() (string, error) { return "", io.ErrUnexpectedEOF }

func TestPrinterJSON(t *testing.T) {
	s, out, errw, _ := testSession(t)
	s.cfg.Output = config.OutputJSON
	p := newPrinter(out, errw, s.cfg)
	require.NoError(t, replLoop(script("H2O", "Q"), s, p))
	assert.Empty(t, errw.String())
	assert.Equal(t, 2, bytes.Count(out.Bytes(), []byte("\n")))
	assert.Contains(t, out.String(), `"is_error":true`)
}
