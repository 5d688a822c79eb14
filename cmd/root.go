package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tagmint",
	Short: "A CLI tool for picking and creating the next release tag",
	Long: `tagmint inspects the existing tags of a repository, applies a
version-increment policy driven by bump flags, and proposes the next tag
for confirmation before creating and pushing it.`,
}

func Execute() error {
	return rootCmd.Execute()
}
