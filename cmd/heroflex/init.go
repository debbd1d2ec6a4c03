package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-heroflex/pkg/prompt"
)

func newInitCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively scaffold a hero block as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			driver := prompt.NewSurveyDriver(cmd.ErrOrStderr())
			block, err := prompt.Scaffold(cmd.Context(), driver)
			if errors.Is(err, prompt.ErrAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "aborted")
				return nil
			}
			if err != nil {
				return err
			}

			data, err := prompt.MarshalYAML(block)
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return driver.Info(cmd.Context(), "wrote "+output)
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "output file (stdout if empty)")
	return cmd
}
