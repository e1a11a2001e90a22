package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-mining/internal/pipeline"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the rendered homepage without publishing it",
	Long:  "Parses the resume and renders the site template exactly as a publish would, writing the page to stdout. The homepage and archive are left untouched.",
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Progress messages go to stderr so stdout carries only the page
	page, _, err := pipeline.Preview(pipeline.Options{
		Config: cfg,
		Out:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	_, err = io.WriteString(cmd.OutOrStdout(), page)
	if err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	return nil
}
