// Package cli implements the command-line interface of texgen.
package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/texgen/go-texgen/internal/batch"
	"github.com/texgen/go-texgen/pkg/orchestrator"
)

// version is set at build time to a Git tag or left as-is for development
// builds.
var version = "development version"

func getVersion() string {
	return "texgen " + version
}

// DoCLI reads the command-line arguments and runs the appropriate code, then
// exits the process (or returns to indicate normal exit).
func DoCLI() {
	var (
		inputDir     string
		outputDir    string
		caption      string
		label        string
		pattern      string
		rendererName string
		precision    int
		manifestPath string
		themeName    string
		themeVariant string
		keepGoing    bool
		interactive  bool
		quiet        bool
	)

	rootCmd := &cobra.Command{
		Use:     "texgen",
		Short:   "Convert CSV files into LaTeX booktabs tables",
		Long:    "texgen scans a directory for CSV files and writes one LaTeX table file per input, escaping special characters and rounding numeric columns.",
		Version: getVersion(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runConvert(cmd.Context(), batch.Config{
				InputDir:     inputDir,
				OutputDir:    outputDir,
				Pattern:      pattern,
				Caption:      caption,
				Label:        label,
				Renderer:     rendererName,
				Precision:    &precision,
				ManifestPath: manifestPath,
				ThemeName:    themeName,
				ThemeVariant: themeVariant,
				KeepGoing:    keepGoing,
				Interactive:  interactive,
				Quiet:        quiet,
			})
		},
	}
	rootCmd.SetVersionTemplate(`{{.Version}}` + "\n")

	rootCmd.Flags().SortFlags = false
	rootCmd.Flags().StringVar(&inputDir, "in", "./tables", "input directory to scan for datasets")
	rootCmd.Flags().StringVar(&outputDir, "out", "./latex_tables", "output directory, created if absent")
	rootCmd.Flags().StringVar(&caption, "caption", "", "default caption for files without a manifest entry")
	rootCmd.Flags().StringVar(&label, "label", "", "default label for files without a manifest entry")
	rootCmd.Flags().StringVar(&pattern, "pattern", "*.csv", "filename glob selecting which files to convert")
	rootCmd.Flags().StringVar(&rendererName, "renderer", "latex", "output renderer")
	rootCmd.Flags().IntVar(&precision, "precision", 4, "decimal digits for numeric columns (negative disables rounding)")
	rootCmd.Flags().StringVar(&manifestPath, "manifest", "", "per-file overrides manifest (default <in>/tables.yaml when present)")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "table style theme")
	rootCmd.Flags().StringVar(&themeVariant, "variant", "", "table style theme variant")
	rootCmd.Flags().BoolVar(&keepGoing, "keep-going", false, "skip files that fail instead of aborting the run")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "ask before overwriting existing output files")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress per-file success output")

	cmdRenderers := &cobra.Command{
		Use:   "renderers",
		Short: "List registered renderers",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			gen := orchestrator.New()
			for _, name := range gen.Renderers() {
				fmt.Println(name)
			}
		},
	}
	rootCmd.AddCommand(cmdRenderers)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runConvert(ctx context.Context, cfg batch.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg.Log = log.New(os.Stderr, "", 0)

	gen := orchestrator.New(
		orchestrator.WithThemeSelector(orchestrator.DefaultThemeSelector()),
	)
	converter, err := batch.New(gen, cfg)
	if err != nil {
		return err
	}

	if _, err := converter.Run(ctx); err != nil {
		return err
	}
	return nil
}
