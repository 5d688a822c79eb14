package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tagmint/tagmint/internal/usecase"
)

// newHistoryCmd creates the history command
func newHistoryCmd(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List tags created by tagmint in this repository",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := &usecase.ListHistoryUseCase{History: c.historyRepo}
			records, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "no tags recorded yet")
				return nil
			}
			for _, rec := range records {
				pushed := "local"
				if rec.Pushed {
					pushed = "pushed"
				}
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\n",
					rec.CreatedAt.Format("2006-01-02 15:04"),
					rec.Tag,
					shortCommit(rec.Commit),
					rec.Branch,
					pushed,
				)
			}
			return nil
		},
	}
}

func shortCommit(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}
	return sha
}
