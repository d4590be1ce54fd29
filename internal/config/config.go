package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	// FileName is the name of the configuration file.
	FileName = "vexel.json"

	// DefaultPort is the default live server port.
	DefaultPort = 3000

	// DefaultHost is the default live server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default render output path.
	DefaultOutput = "out.png"
)

// Config is the complete vexel.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Serve contains live server settings.
	Serve ServeConfig `json:"serve,omitempty"`

	// Render contains rasterization settings.
	Render RenderConfig `json:"render,omitempty"`

	// Format contains serialization settings shared by fmt and diff.
	Format FormatConfig `json:"format,omitempty"`

	// configPath stores the path the config was loaded from.
	configPath string
}

// ServeConfig contains live server settings.
type ServeConfig struct {
	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// MaxSessions caps concurrent viewers.
	MaxSessions int `json:"maxSessions,omitempty"`

	// Heartbeat is the WebSocket ping cadence (e.g. "30s").
	Heartbeat string `json:"heartbeat,omitempty"`

	// Metrics exposes Prometheus metrics at /metrics.
	Metrics bool `json:"metrics,omitempty"`
}

// RenderConfig contains rasterization settings.
type RenderConfig struct {
	// Output is the default output path for rendered images.
	Output string `json:"output,omitempty"`

	// Width and Height override the document size when set.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

// FormatConfig contains serialization settings.
type FormatConfig struct {
	// Pretty enables indented output.
	Pretty bool `json:"pretty,omitempty"`

	// Indent is the per-level indent string for pretty output.
	Indent string `json:"indent,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Version: "0.1.0",
		Serve: ServeConfig{
			Port:      DefaultPort,
			Host:      DefaultHost,
			Heartbeat: "30s",
			Metrics:   true,
		},
		Render: RenderConfig{
			Output: DefaultOutput,
		},
		Format: FormatConfig{
			Pretty: true,
			Indent: "  ",
		},
	}
}

// Load reads configuration from the specified directory. It looks for
// vexel.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config: no %s found in %s", FileName, filepath.Dir(path))
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the configuration back to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return fmt.Errorf("config: no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from.
func (c *Config) Path() string { return c.configPath }

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Serve.Heartbeat == "" {
		c.Serve.Heartbeat = "30s"
	}
	if c.Render.Output == "" {
		c.Render.Output = DefaultOutput
	}
	if c.Format.Indent == "" {
		c.Format.Indent = "  "
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Serve.Port)
	}
	if c.Serve.MaxSessions < 0 {
		return fmt.Errorf("config: maxSessions must not be negative")
	}
	if c.Serve.Heartbeat != "" {
		if _, err := time.ParseDuration(c.Serve.Heartbeat); err != nil {
			return fmt.Errorf("config: heartbeat: %w", err)
		}
	}
	if c.Render.Width < 0 || c.Render.Height < 0 {
		return fmt.Errorf("config: render size must not be negative")
	}
	return nil
}

// ServeAddress returns the listen address for the live server.
func (c *Config) ServeAddress() string {
	return c.Serve.Host + ":" + strconv.Itoa(c.Serve.Port)
}

// HeartbeatInterval returns the parsed ping cadence, zero when unset or
// invalid. Validate reports invalid values.
func (c *Config) HeartbeatInterval() time.Duration {
	d, err := time.ParseDuration(c.Serve.Heartbeat)
	if err != nil {
		return 0
	}
	return d
}

// OutputPath returns the absolute path of the render output.
func (c *Config) OutputPath() string {
	if filepath.IsAbs(c.Render.Output) {
		return c.Render.Output
	}
	return filepath.Join(c.Dir(), c.Render.Output)
}

// Exists checks whether a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, FileName))
	return err == nil
}

// FindProjectRoot walks up from startDir to the directory containing
// vexel.json.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		if Exists(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("config: no %s found in %s or any parent directory", FileName, startDir)
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the nearest project root
// above the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}
	return Load(root)
}
