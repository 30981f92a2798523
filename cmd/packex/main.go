// Package main provides the CLI entry point for packex.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/turnkeydata/packex/internal/clog"
	"github.com/turnkeydata/packex/pkg/packex"
	"github.com/turnkeydata/packex/pkg/packex/models"
	"github.com/turnkeydata/packex/pkg/packex/output"
)

var (
	outputPath  string
	imagesDir   string
	categoryCol int
	noPreviews  bool
	verbose     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "packex [root-dir]",
		Short: "Flatten package spreadsheets into a normalized data workbook",
		Long: `packex walks a directory tree of loosely formatted package spreadsheets,
infers their layout (package sections, detail columns, merged cells), links
embedded images to the owning package and writes one normalized data workbook.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "packages_data.xlsx", "Output workbook path")
	rootCmd.Flags().StringVar(&imagesDir, "images-dir", "images", "Directory for extracted package images")
	rootCmd.Flags().IntVar(&categoryCol, "category-col", 6, "1-based column holding package categories")
	rootCmd.Flags().BoolVar(&noPreviews, "no-previews", false, "Do not embed image previews in the output workbook")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type fileStat struct {
	name     string
	packages int
	rows     int
	images   int
}

func run(cmd *cobra.Command, args []string) error {
	clog.SetVerbose(verbose)
	rootDir := args[0]

	files, err := findWorkbooks(rootDir, filepath.Base(outputPath))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .xlsx files found under %s", rootDir)
	}
	clog.Infof("found %d workbook(s) under %s", len(files), rootDir)

	store := output.NewImageStore(imagesDir)
	if err := store.Init(); err != nil {
		return fmt.Errorf("preparing images directory: %w", err)
	}
	clog.Infof("images directory ready: %s", imagesDir)

	opts := packex.DefaultOptions()
	opts.CategoryColumn = categoryCol
	opts.EmbedPreviews = !noPreviews

	var all []models.Record
	var stats []fileStat
	for _, path := range files {
		rel, relErr := filepath.Rel(rootDir, path)
		if relErr != nil {
			rel = path
		}
		res, err := packex.ProcessWorkbook(path, store, opts)
		if err != nil {
			// Per-document failures are contained; the batch continues.
			clog.Errorf("%v", err)
			continue
		}
		all = append(all, res.Records...)
		stats = append(stats, fileStat{
			name:     rel,
			packages: res.Packages,
			rows:     len(res.Records),
			images:   res.Images,
		})
	}

	if len(all) == 0 {
		clog.Warnf("no rows collected; output workbook not created")
		return nil
	}

	// Output persistence failure is fatal for the whole run.
	if err := output.WriteWorkbook(all, store, outputPath, opts.EmbedPreviews); err != nil {
		return err
	}
	clog.Okf("data workbook created: %s", outputPath)

	printSummary(stats)
	return nil
}

// findWorkbooks collects .xlsx files under rootDir, skipping Excel lock files
// and the output workbook itself.
func findWorkbooks(rootDir, outputName string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".xlsx") {
			return nil
		}
		if strings.HasPrefix(name, "~$") {
			return nil
		}
		if strings.EqualFold(name, outputName) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	return files, err
}

func printSummary(stats []fileStat) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Packages", "Rows", "Images"})

	totalPkgs, totalRows, totalImages := 0, 0, 0
	for _, s := range stats {
		t.AppendRow(table.Row{s.name, s.packages, s.rows, s.images})
		totalPkgs += s.packages
		totalRows += s.rows
		totalImages += s.images
	}
	t.AppendFooter(table.Row{"Total", totalPkgs, totalRows, totalImages})
	t.Render()
}
