package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the host tool configuration.
type Config struct {
	Serial   SerialConfig   `yaml:"serial"`
	Capture  CaptureConfig  `yaml:"capture"`
	Simulate SimulateConfig `yaml:"simulate"`
}

// SerialConfig contains serial port configuration.
type SerialConfig struct {
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
}

// CaptureConfig controls how a stream is recorded.
type CaptureConfig struct {
	Mode       string        `yaml:"mode"`        // logic:<port>, scope:<pin> or auto
	Output     string        `yaml:"output"`      // CSV path, "-" for stdout
	Duration   time.Duration `yaml:"duration"`    // 0 = until interrupted
	BufferSize int           `yaml:"buffer_size"` // decoded samples queued between reader and writer
}

// SimulateConfig drives the simulated board.
type SimulateConfig struct {
	Mode      string  `yaml:"mode"`
	Ticks     int     `yaml:"ticks"`
	Frequency float32 `yaml:"frequency"` // analog input, Hz
	Amplitude float32 `yaml:"amplitude"` // analog input, fraction of full scale
	Offset    float32 `yaml:"offset"`    // analog input, fraction of full scale
	Logic     uint8   `yaml:"logic"`     // port lines for logic modes, counted up every tick
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	return &Config{
		Serial: SerialConfig{
			Port: "/dev/ttyACM0", // LaunchPad ICDI on Linux, "COM3" style on Windows
			Baud: 115200,
		},
		Capture: CaptureConfig{
			Mode:       "auto",
			Output:     "-",
			BufferSize: 10000, // one second of ticks
		},
		Simulate: SimulateConfig{
			Mode:      "scope:PD3",
			Ticks:     10000,
			Frequency: 50,
			Amplitude: 0.45,
			Offset:    0.5,
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ensureDefaults()

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ensureDefaults ensures that all required fields have default values if missing.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Serial.Port == "" {
		c.Serial.Port = def.Serial.Port
	}
	if c.Serial.Baud == 0 {
		c.Serial.Baud = def.Serial.Baud
	}

	if c.Capture.Mode == "" {
		c.Capture.Mode = def.Capture.Mode
	}
	if c.Capture.Output == "" {
		c.Capture.Output = def.Capture.Output
	}
	if c.Capture.BufferSize <= 0 {
		c.Capture.BufferSize = def.Capture.BufferSize
	}

	if c.Simulate.Mode == "" {
		c.Simulate.Mode = def.Simulate.Mode
	}
	if c.Simulate.Ticks <= 0 {
		c.Simulate.Ticks = def.Simulate.Ticks
	}
	if c.Simulate.Frequency == 0 {
		c.Simulate.Frequency = def.Simulate.Frequency
	}
}
