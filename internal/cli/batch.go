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

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rmera/molmass/batch"
	"github.com/rmera/molmass/internal/config"
	"github.com/rmera/molmass/massplot"
)

func newBatchCommand() *cobra.Command {
	var plotFile string
	var showMatrix bool
	var bins int
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Weigh every formula in a file (- for stdin)",
		Long: `Weigh every formula in FILE, one per line, concurrently.
Blank lines and lines starting with # are skipped. Results keep the file order.`,
		Example: `  molmass batch formulas.txt
  molmass batch --plot weights.png formulas.txt
  cat formulas.txt | molmass batch -o json -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := getSession(cmd.Context())
			inputs, err := readFormulas(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			s.logger.Debug("Read formulas", zap.String("file", args[0]), zap.Int("count", len(inputs)))
			results, err := batch.Run(cmd.Context(), s.table, inputs, s.cfg.Workers)
			if err != nil {
				return err
			}
			weights := batch.Weights(results)
			out := cmd.OutOrStdout()
			if s.cfg.Output == config.OutputJSON {
				p := newPrinter(out, cmd.ErrOrStderr(), s.cfg)
				for _, r := range results {
					if err := p.Print(r.Input, r.Report, r.Err); err != nil {
						return err
					}
				}
			} else {
				renderResults(out, results, s.cfg.Precision)
				if showMatrix {
					renderMatrix(out, results)
				}
				if bins > 0 {
					renderHistogram(out, batch.NewHistogram(weights, bins))
				}
				fmt.Fprintln(out, batch.Summarize(results))
			}
			if plotFile != "" && len(weights) == 0 {
				s.logger.Warn("No valid formulas, histogram not written", zap.String("file", plotFile))
			} else if plotFile != "" {
				p, err := massplot.WeightHistogram(weights, 0, "")
				if err != nil {
					return err
				}
				if err := massplot.Save(p, plotFile, s.cfg.Plot.Width, s.cfg.Plot.Height); err != nil {
					return fmt.Errorf("unable to save plot: %w", err)
				}
				s.logger.Info("Wrote histogram", zap.String("file", plotFile))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&plotFile, "plot", "", "write a histogram of the weights to this file (.png, .svg, .pdf)")
	cmd.Flags().BoolVar(&showMatrix, "matrix", false, "also print the atom count of each element per compound")
	cmd.Flags().IntVar(&bins, "bins", 0, "also print the weight distribution in this many bins")
	return cmd
}

// readFormulas returns the non-blank, non-comment lines of name, or of
// stdin if name is "-".
func readFormulas(stdin io.Reader, name string) ([]string, error) {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var inputs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if t := strings.TrimSpace(line); t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return inputs, nil
}

func renderResults(w io.Writer, results []batch.Result, prec int) {
	t := newTableWriter(w)
	t.AppendHeader(table.Row{"#", "Formula", "Weight", "Elements"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})
	for _, r := range results {
		if r.Err != nil {
			t.AppendRow(table.Row{r.Index + 1, r.Input, "-", strings.Join(errorMessages(r.Err), "; ")})
			continue
		}
		t.AppendRow(table.Row{r.Index + 1, r.Input, fmt.Sprintf("%.*f", prec, r.Report.Compound.Weight), strings.Join(r.Report.Compound.Names.Names(), ", ")})
	}
	t.Render()
}

func renderMatrix(w io.Writer, results []batch.Result) {
	counts, elements := batch.CountMatrix(results)
	if counts == nil {
		return
	}
	t := newTableWriter(w)
	header := table.Row{"Formula"}
	for _, e := range elements {
		header = append(header, e.Symbol())
	}
	t.AppendHeader(header)
	row := 0
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		tr := table.Row{r.Input}
		for j := range elements {
			tr = append(tr, int(counts.At(row, j)))
		}
		t.AppendRow(tr)
		row++
	}
	t.Render()
}

func renderHistogram(w io.Writer, H *batch.Histogram) {
	if H == nil {
		return
	}
	counts := H.Counts()
	H.Normalize()
	fractions := H.Counts()
	div := H.Dividers()
	t := newTableWriter(w)
	t.AppendHeader(table.Row{"Weight from", "to", "Formulas", "%"})
	for i := range counts {
		t.AppendRow(table.Row{
			fmt.Sprintf("%.2f", div[i]),
			fmt.Sprintf("%.2f", div[i+1]),
			int(counts[i]),
			fmt.Sprintf("%.1f", 100*fractions[i]),
		})
	}
	t.Render()
}
