/*
 * table.go, part of molmass.
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

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rmera/molmass/tables"
)

func newTableCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Inspect or export the reference table",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the elements of the reference table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := getSession(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "Table: %s\n", s.source)
			t := newTableWriter(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Symbol", "Name", "Weight"})
			t.SetColumnConfigs([]table.ColumnConfig{{Number: 3, Align: text.AlignRight}})
			for _, e := range s.table.Elements() {
				t.AppendRow(table.Row{e.Symbol(), e.Name(), fmt.Sprintf("%.3f", e.Weight())})
			}
			t.AppendFooter(table.Row{"", "elements", s.table.Len()})
			t.Render()
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "export FILE",
		Short: "Write the reference table to FILE (.gz and .zst are compressed)",
		Example: `  molmass table export elements.txt
  molmass -t custom.txt table export custom.txt.zst`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := getSession(cmd.Context())
			if err := tables.Write(args[0], s.table.Records()); err != nil {
				return err
			}
			s.logger.Info("Exported table", zap.String("file", args[0]), zap.Int("elements", s.table.Len()))
			return nil
		},
	})
	return cmd
}
