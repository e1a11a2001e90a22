package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"project_dir": "/srv/site",
		"template_name": "home.html",
		"sanitize": true,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/srv/site", cfg.ProjectDir)
	assert.Equal(t, "home.html", cfg.TemplateName)
	assert.True(t, cfg.Sanitize)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid config file")
}

func TestLoadConfig_SchemaViolation(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{"verbose": "yes"}`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "verbose")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestDefaults_Layout(t *testing.T) {
	cfg := Defaults("/srv/site", "/srv/site/tool/templates")

	assert.Equal(t, "/srv/site", cfg.ProjectDir)
	assert.Equal(t, "/srv/site/tool/templates", cfg.TemplatesDir)
	assert.Equal(t, "personal.html", cfg.TemplateName)
	assert.Equal(t, "/srv/site/SiteFiles/media/resume.txt", cfg.ResumePath)
	assert.Equal(t, "/srv/site/index.html", cfg.HomepagePath)
	assert.Equal(t, "/srv/site/SiteFiles/archive", cfg.ArchiveDir)
}

func TestDefaultsForWorkingDir(t *testing.T) {
	cfg := DefaultsForWorkingDir("/srv/site/resume_mining")

	assert.Equal(t, "/srv/site", cfg.ProjectDir)
	assert.Equal(t, "/srv/site/resume_mining/templates", cfg.TemplatesDir)
	assert.Equal(t, "/srv/site/index.html", cfg.HomepagePath)
}

func TestValidate_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := Defaults(dir, filepath.Join(dir, "templates"))
	require.NoError(t, os.MkdirAll(cfg.TemplatesDir, 0755))
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.ResumePath), 0755))
	require.NoError(t, os.WriteFile(cfg.ResumePath, []byte("resume"), 0644))

	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingRequiredField(t *testing.T) {
	cfg := &Config{TemplatesDir: "templates"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "TemplateName")
}

func TestValidate_ResumeNotFound(t *testing.T) {
	dir := t.TempDir()
	cfg := Defaults(dir, dir)

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_TemplatesDirNotFound(t *testing.T) {
	dir := t.TempDir()
	cfg := Defaults(dir, filepath.Join(dir, "missing"))

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "templates directory not found")
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Defaults("/srv/site", "/srv/templates")

	partial := Config{
		TemplateName: "custom.html",
		ResumePath:   "/tmp/cv.txt",
		Verbose:      true,
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom.html", merged.TemplateName)
	assert.Equal(t, "/tmp/cv.txt", merged.ResumePath)
	assert.True(t, merged.Verbose)

	// Default values should fill in empty fields
	assert.Equal(t, "/srv/templates", merged.TemplatesDir)
	assert.Equal(t, "/srv/site/index.html", merged.HomepagePath)
	assert.Equal(t, "/srv/site/SiteFiles/archive", merged.ArchiveDir)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{TemplateName: "a.html"}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "a.html", merged.TemplateName)
	assert.Empty(t, merged.HomepagePath)
}
