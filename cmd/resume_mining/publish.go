package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-mining/internal/config"
	"github.com/jonathan/resume-mining/internal/pipeline"
)

func loadConfig() (config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get current directory: %w", err)
	}
	return resolveConfig(flags, cwd)
}

func runPublish(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	_, err = pipeline.Run(pipeline.Options{
		Config: cfg,
		Out:    cmd.OutOrStdout(),
	})
	return err
}
