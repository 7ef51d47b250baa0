package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/ygelfand/tocview/cmd"
	"github.com/ygelfand/tocview/internal/config"
	"github.com/ygelfand/tocview/internal/ui"
)

type generator func(root *cobra.Command, dir string) error

var generators = map[string]generator{
	"md":       doc.GenMarkdownTree,
	"markdown": doc.GenMarkdownTree,
	"man": func(root *cobra.Command, dir string) error {
		header := &doc.GenManHeader{Title: "TOCVIEW", Section: "1", Source: "tocview " + config.Version}
		return doc.GenManTree(root, header, dir)
	},
}

// generate replaces outDir with freshly generated docs. The format is
// checked before anything on disk is touched.
func generate(root *cobra.Command, outDir, format string) error {
	gen, ok := generators[format]
	if !ok {
		return fmt.Errorf("unknown docs format: %s", format)
	}

	if err := os.RemoveAll(outDir); err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	root.DisableAutoGenTag = true
	return gen(root, outDir)
}

func main() {
	var outDir, format string

	gen := &cobra.Command{
		Use:           "gendocs",
		Short:         "Generate tocview CLI reference docs",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(c *cobra.Command, args []string) error {
			if err := generate(cmd.GetRootCmd(), outDir, format); err != nil {
				return err
			}
			ui.RenderSuccess(fmt.Sprintf("Generated %s CLI documentation in %s", format, outDir))
			return nil
		},
	}

	cwd, _ := os.Getwd()
	gen.Flags().StringVar(&outDir, "dir", filepath.Join(cwd, "docs", "cli"), "output directory")
	gen.Flags().StringVar(&format, "format", "md", "docs format (md, man)")

	if err := gen.Execute(); err != nil {
		ui.RenderError(err)
		os.Exit(1)
	}
}
