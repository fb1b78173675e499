package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
	"moul.io/zapfilter"
)

// Config describes the optional log configuration file.
// Filters use the zapfilter rule syntax, for example "debug:store*".
type Config struct {
	DefaultLevel string   `yaml:"defaultLevel"`
	Filters      []string `yaml:"filters"`
}

func LoadConfig(fileName string) (*Config, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing log config: %w", err)
	}
	return cfg, nil
}

func DefaultDevConfig() *Config {
	return &Config{DefaultLevel: "info"}
}

// NewWithConfig creates a logger honoring the filter rules of cfg.
// format is either "json" or "text".
func NewWithConfig(cfg *Config, w io.Writer, format string, opts ...Option) (*Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	level := InfoLevel
	if cfg.DefaultLevel != "" {
		var err error
		if level, err = ParseLevel(cfg.DefaultLevel); err != nil {
			return nil, fmt.Errorf("invalid defaultLevel %q: %w", cfg.DefaultLevel, err)
		}
	}
	var encoder zapcore.Encoder
	switch format {
	case "json":
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encCfg)
	default:
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.Level(level))
	if len(cfg.Filters) > 0 {
		rules, err := zapfilter.ParseRules(strings.Join(cfg.Filters, " "))
		if err != nil {
			return nil, fmt.Errorf("invalid log filters: %w", err)
		}
		core = zapfilter.NewFilteringCore(core, rules)
	}
	return &Logger{l: zap.New(core, opts...), level: level}, nil
}
