/*
 * output.go, part of molmass.
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
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rmera/molmass"
	"github.com/rmera/molmass/internal/config"
	"github.com/rmera/molmass/massjson"
)

// printer writes reports in the configured format. Text goes to out,
// error messages to errw. JSON mode writes everything to out, one object
// per line.
type printer struct {
	out  io.Writer
	errw io.Writer
	prec int
	enc  *massjson.Encoder //nil in text mode
}

func newPrinter(out, errw io.Writer, cfg *config.Config) *printer {
	p := &printer{out: out, errw: errw, prec: cfg.Precision}
	if cfg.Output == config.OutputJSON {
		p.enc = massjson.NewEncoder(out)
	}
	return p
}

// Print writes the outcome of evaluating input. R is ignored if err is not nil.
func (p *printer) Print(input string, R *molmass.Report, err error) error {
	if p.enc != nil {
		return p.enc.Encode(input, R, err)
	}
	if err != nil {
		for _, m := range errorMessages(err) {
			if _, werr := fmt.Fprintln(p.errw, m); werr != nil {
				return werr
			}
		}
		return nil
	}
	_, werr := fmt.Fprintf(p.out, "%s\n%s\n", R.WeightLine(p.prec), R.Sentence)
	return werr
}

// errorMessages returns the user-facing lines for err.
func errorMessages(err error) []string {
	var ferr *molmass.FormulaError
	if errors.As(err, &ferr) {
		return ferr.Messages()
	}
	return []string{err.Error()}
}

// newTableWriter returns a go-pretty writer rendering to w. Headers and
// footers keep their case: element symbols are case-sensitive.
func newTableWriter(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	return t
}
