package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tagmint/tagmint/internal/usecase"
)

// newLatestCmd creates the latest command
func newLatestCmd(c *container) *cobra.Command {
	var (
		latestPrefix string
		latestSource string
	)
	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Print the latest release tag for a prefix",
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefix := latestPrefix
			if prefix == "" {
				prefix = c.cfg.TagPrefix
			}
			source, err := c.tagSource(latestSource)
			if err != nil {
				return err
			}
			uc := &usecase.LatestTagUseCase{Source: source}
			latest, ok, err := uc.Execute(cmd.Context(), prefix)
			if err != nil {
				return err
			}
			if !ok {
				if prefix != "" {
					return fmt.Errorf("no tags found for prefix %q", prefix)
				}
				return fmt.Errorf("no tags found")
			}
			fmt.Fprintln(cmd.OutOrStdout(), latest.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&latestPrefix, "prefix", "", "Tag prefix to namespace the tag series")
	cmd.Flags().StringVar(&latestSource, "source", "git", "Tag source: git or github")
	return cmd
}
