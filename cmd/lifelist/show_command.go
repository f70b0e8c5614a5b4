package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lifelist/internal/importer"
	"lifelist/internal/lifelist"
)

const defaultShowLimit = 10

func newShowCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Summarize the stored life list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd.Context(), func(svc *importer.Service) error {
				list, ok, err := svc.Current(cmd.Context())
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					if list == nil {
						list = lifelist.List{}
					}
					return writeJSON(cmd, list)
				}

				out := cmd.OutOrStdout()
				if !ok {
					fmt.Fprintln(out, "No life list stored. Run `lifelist import <file>` first.")
					return nil
				}
				fmt.Fprintf(out, "Life list: %d species\n", len(list))
				if len(list) == 0 {
					return nil
				}

				recent := list.MostRecent(limit)
				fmt.Fprintf(out, "\nMost recently seen (%d):\n", len(recent))
				fmt.Fprintln(out, renderTable(
					[]string{"Last Seen", "Common Name", "Scientific Name"},
					speciesRows(recent),
					[]columnAlignment{alignLeft, alignLeft, alignLeft},
					shouldColorize(out),
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultShowLimit, "Number of recent species to list (0 for all)")
	return cmd
}

func speciesRows(list lifelist.List) [][]string {
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		seen := s.LastSeen
		if seen == "" {
			seen = "-"
		}
		rows = append(rows, []string{seen, s.CommonName, s.ScientificName})
	}
	return rows
}
