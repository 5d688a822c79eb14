package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tagmint/tagmint/internal/domain"
	"github.com/tagmint/tagmint/internal/orchestrator"
)

// newNextCmd creates the next command
func newNextCmd(c *container) *cobra.Command {
	var (
		nextMajor   bool
		nextMinor   bool
		nextPatch   bool
		nextPre     bool
		nextPrefix  string
		nextSource  string
		nextMessage string
		nextYes     bool
		nextDryRun  bool
		nextNoPush  bool
	)
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Propose and create the next release tag",
		Long: `Propose the next release tag and create it after confirmation.

The proposal is computed from the latest existing tag matching the prefix:
- --major / --minor / --patch bump the respective component (patch is the
  default when no bump flag is given)
- --pre starts or advances a pre0, pre1, ... prerelease series
- a patch bump on a prerelease finalizes the series without consuming an
  extra patch increment

The proposed tag is shown as the default of an interactive prompt; entering
a different tag overrides the proposal, and an unparsable override aborts
the run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Default to a patch bump; the increment policy itself never
			// defaults.
			if !nextMajor && !nextMinor && !nextPatch && !nextPre {
				nextPatch = true
			}
			// Conflicting flags abort here, before any network or VCS work.
			intent, err := domain.NewIntent(nextMajor, nextMinor, nextPatch, nextPre)
			if err != nil {
				return err
			}
			prefix := nextPrefix
			if prefix == "" {
				prefix = c.cfg.TagPrefix
			}
			gitRepo, err := c.gitRepository()
			if err != nil {
				return err
			}
			source, err := c.tagSource(nextSource)
			if err != nil {
				return err
			}
			orch := orchestrator.NewReleaseOrchestrator(
				gitRepo,
				source,
				c.promptSvc,
				c.historyRepo,
				c.log,
				cmd.OutOrStdout(),
			)
			return orch.Execute(cmd.Context(), orchestrator.ReleaseConfig{
				Prefix:    prefix,
				Intent:    intent,
				Message:   nextMessage,
				AssumeYes: nextYes,
				DryRun:    nextDryRun,
				Push:      !nextNoPush,
			})
		},
	}
	cmd.Flags().BoolVar(&nextMajor, "major", false, "Bump the major version")
	cmd.Flags().BoolVar(&nextMinor, "minor", false, "Bump the minor version")
	cmd.Flags().BoolVar(&nextPatch, "patch", false, "Bump the patch version (default)")
	cmd.Flags().BoolVar(&nextPre, "pre", false, "Start or advance a prerelease series")
	cmd.Flags().StringVar(&nextPrefix, "prefix", "", "Tag prefix to namespace the tag series")
	cmd.Flags().StringVar(&nextSource, "source", "git", "Tag source: git or github")
	cmd.Flags().StringVarP(&nextMessage, "message", "m", "", "Tag message")
	cmd.Flags().BoolVarP(&nextYes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&nextDryRun, "dry-run", false, "Print the proposed tag without creating it")
	cmd.Flags().BoolVar(&nextNoPush, "no-push", false, "Create the tag locally without pushing")
	return cmd
}
