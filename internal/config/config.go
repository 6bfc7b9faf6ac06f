package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/vango-dev/hydrate/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "hydrate.json"

	// DefaultPort is the default check server port.
	DefaultPort = 3000

	// DefaultHost is the default check server host.
	DefaultHost = "localhost"

	// DefaultMetricsNamespace is the default Prometheus namespace.
	DefaultMetricsNamespace = "hydrate"
)

// Config represents the complete hydrate.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Port is the default server port (convenience field, also in Server).
	Port int `json:"port,omitempty"`

	// Server contains check server configuration.
	Server ServerConfig `json:"server,omitempty"`

	// Diagnostics contains mismatch diagnostics configuration.
	Diagnostics DiagnosticsConfig `json:"diagnostics,omitempty"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Report contains mismatch report storage configuration.
	Report ReportConfig `json:"report,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains check server settings.
type ServerConfig struct {
	// Port is the port to run the check server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// HTTPS reports whether the server sits behind HTTPS.
	HTTPS bool `json:"https,omitempty"`
}

// DiagnosticsConfig contains mismatch diagnostics settings.
type DiagnosticsConfig struct {
	// Enabled turns mismatch warnings on. Off by default; diagnostics
	// are a development tool.
	Enabled bool `json:"enabled,omitempty"`

	// Overlay enables the WebSocket diagnostics overlay endpoint.
	Overlay bool `json:"overlay,omitempty"`
}

// MetricsConfig contains Prometheus metrics settings.
type MetricsConfig struct {
	// Enabled exposes the /metrics endpoint on the check server.
	Enabled bool `json:"enabled,omitempty"`

	// Namespace is the Prometheus metrics namespace.
	Namespace string `json:"namespace,omitempty"`

	// Subsystem is the Prometheus metrics subsystem.
	Subsystem string `json:"subsystem,omitempty"`
}

// ReportConfig contains mismatch report storage settings.
type ReportConfig struct {
	// Bucket is the S3 bucket for uploaded reports. Empty disables
	// report uploads.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the object key prefix for uploaded reports.
	Prefix string `json:"prefix,omitempty"`

	// Region is the bucket's AWS region.
	Region string `json:"region,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Version: "0.1.0",
		Port:    DefaultPort,
		Server: ServerConfig{
			Port: DefaultPort,
			Host: DefaultHost,
		},
		Metrics: MetricsConfig{
			Namespace: DefaultMetricsNamespace,
		},
		Report: ReportConfig{
			Prefix: "reports/",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for hydrate.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("H121").
				WithDetail("No hydrate.json found in " + filepath.Dir(path)).
				WithSuggestion("Create hydrate.json or pass flags explicitly")
		}
		return nil, errors.New("H120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("H120").
			WithDetail("Failed to parse hydrate.json: " + err.Error()).
			WithSuggestion("Check that hydrate.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("H120").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("H120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Server.Port == 0 {
		c.Server.Port = c.Port
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsNamespace
	}
	if c.Report.Prefix == "" {
		c.Report.Prefix = "reports/"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("H122").
			WithDetail("Port must be between 0 and 65535")
	}
	return nil
}

// ServerAddress returns the address string for the check server.
func (c *Config) ServerAddress() string {
	return c.Server.Host + ":" + itoa(c.Server.Port)
}

// ServerURL returns the full URL for the check server.
func (c *Config) ServerURL() string {
	scheme := "http"
	if c.Server.HTTPS {
		scheme = "https"
	}
	return scheme + "://" + c.ServerAddress()
}

// HasReportStore reports whether report uploads are configured.
func (c *Config) HasReportStore() bool {
	return c.Report.Bucket != ""
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing hydrate.json, or an error if not found.
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
			return "", errors.New("H121").
				WithDetail("No hydrate.json found in " + startDir + " or any parent directory").
				WithSuggestion("Create hydrate.json at the project root")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
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

// itoa converts int to string without importing strconv.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + itoa(-n)
	}
	digits := make([]byte, 0, 10)
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	// Reverse
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
