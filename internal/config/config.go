package config

// Output formats for the purge report.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// ValidOutputs returns the accepted report formats.
func ValidOutputs() []string {
	return []string{OutputText, OutputJSON, OutputYAML}
}

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// PurgeConfig is the full set of purge settings.
type PurgeConfig struct {
	// Cloud is the clouds.yaml entry to authenticate with.
	Cloud string `yaml:"cloud"`
	// Project is the name or ID of the project to purge.
	Project string `yaml:"project"`
	// KeepProject purges resources but leaves the project.
	KeepProject bool `yaml:"keep_project,omitempty"`
	// Check resolves the project without deleting anything.
	Check bool `yaml:"check,omitempty"`

	Output    string `yaml:"output,omitempty"`
	LogFormat string `yaml:"log_format,omitempty"`
	Verbose   bool   `yaml:"verbose,omitempty"`

	// Pushgateway is the Prometheus Pushgateway URL metrics are pushed to.
	Pushgateway string `yaml:"pushgateway,omitempty"`

	Archive ArchiveConfig `yaml:"archive,omitempty"`
}

// ArchiveConfig selects where the JSON report is uploaded.
type ArchiveConfig struct {
	// Bucket is an s3://bucket/prefix URL.
	Bucket   string `yaml:"bucket,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
	Region   string `yaml:"region,omitempty"`
}

// Enabled reports whether a report archive is configured.
func (a ArchiveConfig) Enabled() bool {
	return a.Bucket != ""
}

// Default returns a configuration with defaults applied.
func Default() *PurgeConfig {
	return &PurgeConfig{
		Output:    OutputText,
		LogFormat: LogFormatText,
	}
}

func (c *PurgeConfig) applyDefaults() {
	if c.Output == "" {
		c.Output = OutputText
	}
	if c.LogFormat == "" {
		c.LogFormat = LogFormatText
	}
}
