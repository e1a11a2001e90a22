package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-mining/internal/config"
)

// configEnvVar names a config file used when --config is not given
const configEnvVar = "RESUME_MINING_CONFIG"

type cliFlags struct {
	configFile   string
	projectDir   string
	templatesDir string
	resumePath   string
	sanitize     bool
	verbose      bool
}

var flags cliFlags

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configFile, "config", "c", "", "Path to JSON config file (default $"+configEnvVar+")")
	pf.StringVar(&flags.projectDir, "project-dir", "", "Site root (default: parent of the working directory)")
	pf.StringVar(&flags.templatesDir, "templates-dir", "", "Template directory (default: ./templates)")
	pf.StringVarP(&flags.resumePath, "resume", "r", "", "Path to the plain-text resume")
	pf.BoolVar(&flags.sanitize, "sanitize", false, "Escape markup found in resume text")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Print detailed debug information")
}

// resolveConfig merges, in increasing priority: the default layout for cwd,
// the config file, then command-line flags.
func resolveConfig(f cliFlags, cwd string) (config.Config, error) {
	cfg := config.Config{}

	configFile := f.configFile
	if configFile == "" {
		configFile = os.Getenv(configEnvVar)
	}
	if configFile != "" {
		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	if f.projectDir != "" {
		cfg.ProjectDir = f.projectDir
	}
	if f.templatesDir != "" {
		cfg.TemplatesDir = f.templatesDir
	}
	if f.resumePath != "" {
		cfg.ResumePath = f.resumePath
	}
	if f.sanitize {
		cfg.Sanitize = true
	}
	if f.verbose {
		cfg.Verbose = true
	}

	defaults := config.DefaultsForWorkingDir(cwd)
	if cfg.ProjectDir != "" {
		defaults = config.Defaults(cfg.ProjectDir, defaults.TemplatesDir)
	}
	merged := cfg.MergeWithDefaults(defaults)

	if err := merged.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return merged, nil
}
