package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loafworks/bread/config"
	"github.com/loafworks/bread/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static site",
	Run: func(cmd *cobra.Command, args []string) {
		contentDir, _ := cmd.Flags().GetString("content-dir")
		outputDir, _ := cmd.Flags().GetString("output-dir")
		templateDir, _ := cmd.Flags().GetString("template-dir")

		fmt.Println("Building site...")

		manifest, err := config.Load("site.yaml")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading site manifest: %v\n", err)
			os.Exit(1)
		}

		err = site.Build(site.Options{
			ContentDir:  contentDir,
			OutputDir:   outputDir,
			TemplateDir: templateDir,
		}, manifest)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building site: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Site built successfully to %s/\n", outputDir)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("content-dir", "c", "content", "Directory containing markdown sources")
	buildCmd.Flags().StringP("output-dir", "o", "public", "Directory to write the generated site to")
	buildCmd.Flags().StringP("template-dir", "t", "templates", "Directory containing base.html and posts.html")
}
