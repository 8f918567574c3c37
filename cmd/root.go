package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bread",
	Short: "Bread - a minimal static site generator",
	Long: `Bread turns a tree of Markdown documents with front-matter into a static
HTML site: one page per document, an aggregated posts listing and a verbatim
copy of the static asset tree.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
