// Package main provides the entry point for the resume_mining publisher.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_mining",
	Short: "Publish a plain-text resume to the personal site",
	Long: "resume_mining parses a plain-text resume into skills, experience and education sections, " +
		"renders them into the site template and replaces the homepage, keeping a dated copy of the previous one.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPublish,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
