package contract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config selects the violation handler, report mode and logger.
type Config struct {
	Handler string    `toml:"handler" yaml:"handler"`
	Report  string    `toml:"report" yaml:"report"`
	Log     LogConfig `toml:"log" yaml:"log"`
}

// LogConfig configures the zap logger installed by Apply.
type LogConfig struct {
	Level       string `toml:"level" yaml:"level"`
	Development bool   `toml:"development" yaml:"development"`
	// Disabled keeps the no-op logger.
	Disabled bool `toml:"disabled" yaml:"disabled"`
}

// DefaultConfig mirrors the package defaults: abort on violation, report
// line and condition, production logging at info level.
func DefaultConfig() Config {
	return Config{
		Handler: "abort",
		Report:  ReportLine.String(),
		Log:     LogConfig{Level: "info"},
	}
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) file. Fields the
// file leaves unset keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("config load failed (%s): unsupported extension %q", path, ext)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

// Validate checks the handler, report mode and log level names.
func (c Config) Validate() error {
	if _, err := c.handler(nil); err != nil {
		return err
	}
	if _, ok := ParseReportMode(c.Report); !ok {
		return fmt.Errorf("unknown report mode %q", c.Report)
	}
	if _, err := zapcore.ParseLevel(c.levelName()); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Apply installs the configured logger, report mode and handler. The
// returned func restores the previous settings.
func (c Config) Apply() (restore func(), err error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	l, err := c.Log.build()
	if err != nil {
		return nil, fmt.Errorf("logger build failed: %w", err)
	}
	h, _ := c.handler(l)
	mode, _ := ParseReportMode(c.Report)

	prevLogger, prevMode, prevHandler := logger, reportMode, handler
	SetLogger(l)
	SetReportMode(mode)
	SetHandler(h)
	return func() {
		SetLogger(prevLogger)
		SetReportMode(prevMode)
		SetHandler(prevHandler)
	}, nil
}

func (c Config) handler(l *zap.Logger) (Handler, error) {
	switch strings.ToLower(strings.TrimSpace(c.Handler)) {
	case "", "abort":
		return Abort, nil
	case "raise":
		return Raise, nil
	case "log":
		return Log(l), nil
	case "ignore":
		return Ignore, nil
	}
	return nil, fmt.Errorf("unknown handler %q", c.Handler)
}

func (c Config) levelName() string {
	if c.Log.Level == "" {
		return "info"
	}
	return c.Log.Level
}

func (lc LogConfig) build() (*zap.Logger, error) {
	if lc.Disabled {
		return zap.NewNop(), nil
	}
	level, err := zapcore.ParseLevel(Config{Log: lc}.levelName())
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
