package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"lifelist/internal/importer"
)

func newClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored life list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd.Context(), func(svc *importer.Service) error {
				if err := svc.Clear(cmd.Context()); err != nil {
					return fmt.Errorf("clear life list: %w", err)
				}
				return ctx.emit(cmd, map[string]bool{"cleared": true}, func(out io.Writer) {
					fmt.Fprintln(out, "Cleared stored life list")
				})
			})
		},
	}
}
