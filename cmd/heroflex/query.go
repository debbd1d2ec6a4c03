package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-heroflex/pkg/query"
)

func newQueryCommand() *cobra.Command {
	var (
		page     bool
		pageType string
		paths    bool
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Print the GROQ projection the renderer expects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			projection := query.HeroFlex()
			out := cmd.OutOrStdout()

			switch {
			case paths:
				for _, p := range projection.Paths() {
					if _, err := fmt.Fprintln(out, p); err != nil {
						return err
					}
				}
				return nil
			case page:
				_, err := fmt.Fprintln(out, query.PageGROQ(pageType, projection))
				return err
			default:
				_, err := fmt.Fprintln(out, projection.GROQ())
				return err
			}
		},
	}

	cmd.Flags().BoolVar(&page, "page", false, "wrap the projection in a page-by-slug query")
	cmd.Flags().StringVar(&pageType, "type", query.DefaultPageType, "page document type used with --page")
	cmd.Flags().BoolVar(&paths, "paths", false, "list the projected field paths instead")
	return cmd
}
