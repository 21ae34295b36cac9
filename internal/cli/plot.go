/*
 * plot.go, part of molmass.
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
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rmera/molmass"
	"github.com/rmera/molmass/massplot"
)

func newPlotCommand() *cobra.Command {
	var out, title string
	cmd := &cobra.Command{
		Use:     "plot FORMULA",
		Short:   "Draw the mass composition of a formula",
		Example: `  molmass plot C6H12O6 --out glucose.png`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := getSession(cmd.Context())
			R, err := molmass.Evaluate(s.table, args[0])
			if err != nil {
				for _, m := range errorMessages(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), m)
				}
				return errInvalidFormulas
			}
			p, err := massplot.Composition(R, title)
			if err != nil {
				return err
			}
			if out == "" {
				out = args[0] + ".png"
			}
			if err := massplot.Save(p, out, s.cfg.Plot.Width, s.cfg.Plot.Height); err != nil {
				return fmt.Errorf("unable to save plot: %w", err)
			}
			s.logger.Info("Wrote composition plot", zap.String("file", out))
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output file, format from the extension (default: FORMULA.png)")
	cmd.Flags().StringVar(&title, "title", "", "plot title")
	return cmd
}
