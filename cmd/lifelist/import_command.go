package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"lifelist/internal/importer"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import an eBird export and replace the stored life list",
		Long: "Import reads an eBird \"Download My Data\" export (CSV or XLSX), keeps one\n" +
			"record per scientific name with its most recent observation date, and\n" +
			"replaces the stored life list with the result.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd.Context(), func(svc *importer.Service) error {
				result, err := svc.Import(cmd.Context(), args[0], importer.Options{DryRun: dryRun})
				if err != nil {
					return fmt.Errorf("import %s: %w", args[0], err)
				}
				return ctx.emit(cmd, result, func(out io.Writer) {
					printImportResult(out, result)
				})
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and merge without replacing the stored list")
	return cmd
}

func printImportResult(out io.Writer, result *importer.Result) {
	stats := result.Stats
	if result.DryRun {
		fmt.Fprintf(out, "Dry run: %d species found in %s (stored list unchanged)\n", stats.Species, result.Source)
	} else {
		fmt.Fprintf(out, "Imported %d species from %s\n", stats.Species, result.Source)
		if result.PreviousSpecies > 0 {
			fmt.Fprintf(out, "Replaced previous list of %d species\n", result.PreviousSpecies)
		}
	}
	fmt.Fprintf(out, "Rows: %d read, %d skipped, %d without a recognized date\n", stats.Rows, stats.Skipped, stats.Undated)
}
