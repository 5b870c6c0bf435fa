// Package config holds the process-wide configuration: server identity,
// filesystem layout, and the ordered search roots derived from it.
// Values come from the environment with defaults matching the standard
// container layout.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/bldgsim/osmodel-mcp/internal/pathres"
)

// Server identifies the MCP server.
type Server struct {
	Name     string `env:"OSMCP_SERVER_NAME" envDefault:"osmodel-mcp"`
	LogLevel string `env:"OSMCP_LOG_LEVEL" envDefault:"info"`
}

// Paths is the filesystem layout the server works against. UploadsDir and
// HomeDir exist only in desktop-hosted environments; they participate in
// resolution only when present on disk.
type Paths struct {
	WorkspaceRoot string `env:"OSMCP_WORKSPACE" envDefault:"/workspace"`
	SampleFiles   string `env:"OSMCP_SAMPLE_FILES"`
	OutputDir     string `env:"OSMCP_OUTPUT_DIR"`
	UploadsDir    string `env:"OSMCP_UPLOADS_DIR" envDefault:"/mnt/user-data/uploads"`
	HomeDir       string `env:"OSMCP_HOME_DIR" envDefault:"/home/claude"`
	MountRoot     string `env:"OSMCP_MOUNT_ROOT" envDefault:"/mnt"`
}

// Config is the main configuration container.
type Config struct {
	Server Server
	Paths  Paths
}

// Load parses the environment and fills in derived paths. When the
// configured workspace root does not exist (running outside the container)
// the current working directory is used instead.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if _, err := os.Stat(cfg.Paths.WorkspaceRoot); err != nil {
		if cwd, err := os.Getwd(); err == nil {
			cfg.Paths.WorkspaceRoot = cwd
		}
	}
	if cfg.Paths.SampleFiles == "" {
		cfg.Paths.SampleFiles = filepath.Join(cfg.Paths.WorkspaceRoot, "sample_files")
	}
	if cfg.Paths.OutputDir == "" {
		cfg.Paths.OutputDir = filepath.Join(cfg.Paths.WorkspaceRoot, "outputs")
	}

	// Best-effort: the workspace may be a read-only mount.
	for _, dir := range []string{cfg.Paths.SampleFiles, cfg.Paths.OutputDir} {
		_ = os.MkdirAll(dir, 0o755)
	}

	return cfg, nil
}

// ModelsDir is the conventional subdirectory for bundled sample models.
func (p Paths) ModelsDir() string {
	return filepath.Join(p.SampleFiles, "models")
}

// SearchRoots returns the ordered search locations for path resolution.
// User files have priority: desktop uploads first, then the desktop home
// directory, then the workspace layout, with the current working directory
// last. Roots that do not exist are filtered at resolution time, not here.
func (c *Config) SearchRoots() []pathres.SearchRoot {
	cwd, _ := os.Getwd()
	return []pathres.SearchRoot{
		{Label: "uploads", Base: c.Paths.UploadsDir},
		{Label: "home", Base: c.Paths.HomeDir},
		{Label: "models", Base: c.Paths.ModelsDir()},
		{Label: "samples", Base: c.Paths.SampleFiles},
		{Label: "outputs", Base: c.Paths.OutputDir},
		{Label: "workspace", Base: c.Paths.WorkspaceRoot},
		{Label: "cwd", Base: cwd},
	}
}

// Info returns the configuration as plain key/value data for the
// get_server_info tool.
func (c *Config) Info() map[string]any {
	return map[string]any{
		"server": map[string]any{
			"name":      c.Server.Name,
			"log_level": c.Server.LogLevel,
		},
		"paths": map[string]any{
			"workspace_root": c.Paths.WorkspaceRoot,
			"sample_files":   c.Paths.SampleFiles,
			"models_dir":     c.Paths.ModelsDir(),
			"output_dir":     c.Paths.OutputDir,
			"uploads_dir":    c.Paths.UploadsDir,
			"home_dir":       c.Paths.HomeDir,
			"mount_root":     c.Paths.MountRoot,
		},
	}
}
