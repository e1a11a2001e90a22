// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-mining/internal/schemas"
)

// Default file and directory names, relative to the project directory
const (
	DefaultTemplateName = "personal.html"
	DefaultHomepage     = "index.html"
	DefaultResumeFile   = "resume.txt"
)

// Config holds every path the publisher touches.
// All fields are optional in a config file; missing values come from Defaults.
type Config struct {
	// Paths
	ProjectDir   string `json:"project_dir,omitempty"`                        // Site root, parent of the working directory by default
	TemplatesDir string `json:"templates_dir,omitempty" validate:"required"` // Directory holding the site template
	TemplateName string `json:"template_name,omitempty" validate:"required"` // Template file inside TemplatesDir
	ResumePath   string `json:"resume_path,omitempty" validate:"required"`   // Plain-text resume
	HomepagePath string `json:"homepage_path,omitempty" validate:"required"` // Published homepage, replaced on each run
	ArchiveDir   string `json:"archive_dir,omitempty" validate:"required"`   // Where dated homepage copies go

	// Behavior
	Sanitize bool `json:"sanitize,omitempty"` // Escape markup in resume text
	Verbose  bool `json:"verbose,omitempty"`  // Print detailed debug information
}

// Defaults returns the standard site layout rooted at projectDir
func Defaults(projectDir, templatesDir string) Config {
	return Config{
		ProjectDir:   projectDir,
		TemplatesDir: templatesDir,
		TemplateName: DefaultTemplateName,
		ResumePath:   filepath.Join(projectDir, "SiteFiles", "media", DefaultResumeFile),
		HomepagePath: filepath.Join(projectDir, DefaultHomepage),
		ArchiveDir:   filepath.Join(projectDir, "SiteFiles", "archive"),
	}
}

// DefaultsForWorkingDir returns the layout used when the tool runs from a
// subdirectory of the site: the project is the parent of cwd and templates
// live in cwd/templates.
func DefaultsForWorkingDir(cwd string) Config {
	return Defaults(filepath.Dir(cwd), filepath.Join(cwd, "templates"))
}

// LoadConfig loads configuration from a JSON file.
// The file is checked against the config schema before decoding.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := schemas.ValidateConfigJSON(data); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that required paths are set and that the inputs exist
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if _, err := os.Stat(c.TemplatesDir); os.IsNotExist(err) {
		return fmt.Errorf("config error: templates directory not found: %s", c.TemplatesDir)
	}
	if _, err := os.Stat(c.ResumePath); os.IsNotExist(err) {
		return fmt.Errorf("config error: resume file not found: %s", c.ResumePath)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ProjectDir == "" {
		result.ProjectDir = defaults.ProjectDir
	}
	if result.TemplatesDir == "" {
		result.TemplatesDir = defaults.TemplatesDir
	}
	if result.TemplateName == "" {
		result.TemplateName = defaults.TemplateName
	}
	if result.ResumePath == "" {
		result.ResumePath = defaults.ResumePath
	}
	if result.HomepagePath == "" {
		result.HomepagePath = defaults.HomepagePath
	}
	if result.ArchiveDir == "" {
		result.ArchiveDir = defaults.ArchiveDir
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
