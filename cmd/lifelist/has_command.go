package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lifelist/internal/importer"
	"lifelist/internal/lifelist"
)

type hasResult struct {
	ScientificName string                `json:"scientific_name"`
	Lifer          bool                  `json:"lifer"`
	ListStored     bool                  `json:"list_stored"`
	Record         *lifelist.SeenSpecies `json:"record,omitempty"`
}

func newHasCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "has <scientific name>",
		Short: "Check whether a species is already on the life list",
		Long: "Has looks up a species by scientific name. Unquoted words are joined,\n" +
			"so `lifelist has Turdus migratorius` works.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return errors.New("scientific name must not be empty")
			}
			return ctx.withService(cmd.Context(), func(svc *importer.Service) error {
				list, ok, err := svc.Current(cmd.Context())
				if err != nil {
					return err
				}
				result := hasResult{ScientificName: name, ListStored: ok, Lifer: true}
				if record, found := list.Lookup(name); found {
					result.Lifer = false
					result.Record = &record
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, result)
				}

				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				if !ok {
					fmt.Fprintln(out, renderStatusLine(name, statusInfo, "no life list stored; every species is a lifer", colorize))
					return nil
				}
				if result.Lifer {
					fmt.Fprintln(out, renderStatusLine(name, statusLifer, "not on your life list", colorize))
					return nil
				}
				fmt.Fprintln(out, renderStatusLine(displayName(*result.Record), statusSeen, lastSeenText(*result.Record), colorize))
				return nil
			})
		},
	}
}

func displayName(s lifelist.SeenSpecies) string {
	if s.CommonName == "" {
		return s.ScientificName
	}
	return fmt.Sprintf("%s (%s)", s.CommonName, s.ScientificName)
}

func lastSeenText(s lifelist.SeenSpecies) string {
	if s.LastSeen == "" {
		return "last seen date unknown"
	}
	return "last seen " + s.LastSeen
}
