package main

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration file. Command line flags override it.
type Config struct {
	// Fallback enables the fallback fan for degenerate polygons.
	Fallback bool         `yaml:"fallback"`
	Format   string       `yaml:"format"`
	Color    bool         `yaml:"color"`
	Log      LogConfig    `yaml:"log"`
	Render   RenderConfig `yaml:"render"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

type RenderConfig struct {
	// Size is the length in pixels of the longer side of the polygon's bounds.
	Size    float64 `yaml:"size"`
	Padding float64 `yaml:"padding"`
	Dir     string  `yaml:"dir"`
}

func defaultConfig() Config {
	return Config{
		Fallback: true,
		Format:   "obj",
		Color:    true,
		Log:      LogConfig{Level: "info", Encoding: "console"},
		Render:   RenderConfig{Size: 512, Padding: 32, Dir: "."},
	}
}

// loadConfig reads path over the defaults. An empty path just returns the
// defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Format {
	case "obj", "points":
	default:
		return errors.Errorf("unknown input format %q", c.Format)
	}
	if c.Render.Size <= 0 {
		return errors.Errorf("render size must be positive, got %v", c.Render.Size)
	}
	return nil
}

// build makes a logger writing to stderr, leaving stdout for output.
func (c LogConfig) build() (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, errors.Wrapf(err, "log level %q", c.Level)
	}
	zc := zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: c.Encoding,
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		DisableStacktrace: true,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
	logger, err := zc.Build()
	return logger, errors.Wrap(err, "building logger")
}
