/*
 * eval.go, part of molmass.
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
	"github.com/spf13/cobra"

	"github.com/rmera/molmass"
)

func newEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval FORMULA...",
		Short: "Weigh the given formulas",
		Long: `Weigh each formula and print its molar mass and the elements it contains.
Invalid formulas are reported on stderr; the command fails if any was invalid.`,
		Example: `  molmass eval H2O C6H12O6
  molmass eval -o json NaCl`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := getSession(cmd.Context())
			p := newPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), s.cfg)
			failed := false
			for _, in := range args {
				R, err := molmass.Evaluate(s.table, in)
				if err != nil {
					failed = true
				}
				if perr := p.Print(in, R, err); perr != nil {
					return perr
				}
			}
			if failed {
				return errInvalidFormulas
			}
			return nil
		},
	}
}
