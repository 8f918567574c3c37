package javascript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/pkg/errors"

	"github.com/loafworks/bread/config"
)

// CompileTargets bundles each manifest-declared entry point into the output
// directory. Bundles keep the entry's stem; no content hashing.
func CompileTargets(targets map[string]config.JavascriptTarget, outputRoot string) error {
	for targetName, target := range targets {
		result := api.Build(api.BuildOptions{
			EntryPoints:       []string{target.Source},
			Bundle:            true,
			MinifyWhitespace:  true,
			MinifyIdentifiers: true,
			MinifySyntax:      true,
			Write:             false,
			Outdir:            target.OutDir,
		})
		if len(result.Errors) > 0 {
			return errors.Errorf("bundling %s: %s", targetName, result.Errors[0].Text)
		}
		if len(result.OutputFiles) == 0 {
			continue
		}

		outDir := filepath.Join(outputRoot, target.OutDir)
		if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
			return errors.WithStack(err)
		}

		base := filepath.Base(target.Source)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		outPath := filepath.Join(outDir, stem+".js")

		if err := os.WriteFile(outPath, result.OutputFiles[0].Contents, 0644); err != nil {
			return errors.WithStack(err)
		}
		fmt.Printf("Bundled %s -> %s\n", target.Source, outPath)
	}
	return nil
}
