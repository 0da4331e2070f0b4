// Package config provides YAML-based configuration loading for mechlink.
package config

import (
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "strings"
    "time"

    "github.com/spf13/viper"
)

// Config is the root application configuration.
type Config struct {
    // AppName optional logical name of the node/application
    AppName string `mapstructure:"app_name"`

    // DataDir base directory for persistent data (diagnostic recordings etc.)
    DataDir string `mapstructure:"data_dir"`

    // NodeID is the local node identifier announced to peers
    NodeID string `mapstructure:"node_id"`

    // Log holds logging configuration
    Log LogConfig `mapstructure:"log"`

    // Transports list to configure multiple inbound/outbound links
    Transports []TransportConfig `mapstructure:"transports"`

    // Action controls action-server goal bookkeeping
    Action ActionConfig `mapstructure:"action"`

    // Record controls the diagnostic message recorder
    Record RecordConfig `mapstructure:"record"`
}

// LogConfig defines logger settings.
type LogConfig struct {
    // Level: debug, info, warn, error
    Level string `mapstructure:"level"`
    // Format: console or json
    Format string `mapstructure:"format"`
    // Outputs: list of outputs: stdout, stderr, or file paths
    Outputs []string `mapstructure:"outputs"`

    // Rotation controls file rotation when writing to files
    Rotation RotationConfig `mapstructure:"rotation"`
    // Development toggles development-friendly logging options
    Development bool `mapstructure:"development"`
}

// RotationConfig controls log file rotation for file outputs.
type RotationConfig struct {
    Enable     bool   `mapstructure:"enable"`
    Filename   string `mapstructure:"filename"`
    MaxSizeMB  int    `mapstructure:"max_size_mb"`
    MaxBackups int    `mapstructure:"max_backups"`
    MaxAgeDays int    `mapstructure:"max_age_days"`
    Compress   bool   `mapstructure:"compress"`
}

// ActionConfig tunes goal lifecycle bookkeeping on action servers.
type ActionConfig struct {
    // ResultTTL how long terminal goal results stay retrievable
    ResultTTL time.Duration `mapstructure:"result_ttl"`
    // StatusPeriod interval between status array broadcasts
    StatusPeriod time.Duration `mapstructure:"status_period"`
    // StoreMaxBytes caps the retained-result store; 0 means unbounded
    StoreMaxBytes int64 `mapstructure:"store_max_bytes"`
}

// RecordConfig controls the diagnostic recorder sink.
type RecordConfig struct {
    // Enable turns on envelope recording
    Enable bool `mapstructure:"enable"`
    // Codec: json or cbor
    Codec string `mapstructure:"codec"`
    // Path of the record file, relative paths resolve under DataDir
    Path string `mapstructure:"path"`
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
    return &Config{
        AppName: "mechlink-node",
        DataDir: "./data",
        NodeID:  "node-1",
        Log: LogConfig{
            Level:       "info",
            Format:      "console",
            Outputs:     []string{"stdout"},
            Development: true,
            Rotation: RotationConfig{
                Enable:     false,
                Filename:   "logs/mechlink.log",
                MaxSizeMB:  50,
                MaxBackups: 3,
                MaxAgeDays: 28,
                Compress:   true,
            },
        },
        Transports: []TransportConfig{
            {
                Kind:   "tcp",
                Listen: []string{":7777"},
            },
        },
        Action: ActionConfig{
            ResultTTL:    10 * time.Minute,
            StatusPeriod: time.Second,
        },
        Record: RecordConfig{Codec: "cbor", Path: "records/envelopes.bin"},
    }
}

// Load reads configuration from the provided path (if non-empty),
// otherwise it searches common locations and supports environment overrides.
// Environment variables use the prefix MECHLINK and `.`/`-` are replaced with `_`.
// Example: MECHLINK_LOG_LEVEL=debug
func Load(path string) (*Config, error) {
    cfg := Default()

    v := viper.New()
    v.SetConfigType("yaml")
    v.SetEnvPrefix("MECHLINK")
    v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
    v.AutomaticEnv()

    // seed defaults for viper so env-only configs work
    v.SetDefault("app_name", cfg.AppName)
    v.SetDefault("data_dir", cfg.DataDir)
    v.SetDefault("node_id", cfg.NodeID)
    v.SetDefault("log.level", cfg.Log.Level)
    v.SetDefault("log.format", cfg.Log.Format)
    v.SetDefault("log.outputs", cfg.Log.Outputs)
    v.SetDefault("log.development", cfg.Log.Development)
    v.SetDefault("log.rotation.enable", cfg.Log.Rotation.Enable)
    v.SetDefault("log.rotation.filename", cfg.Log.Rotation.Filename)
    v.SetDefault("log.rotation.max_size_mb", cfg.Log.Rotation.MaxSizeMB)
    v.SetDefault("log.rotation.max_backups", cfg.Log.Rotation.MaxBackups)
    v.SetDefault("log.rotation.max_age_days", cfg.Log.Rotation.MaxAgeDays)
    v.SetDefault("log.rotation.compress", cfg.Log.Rotation.Compress)
    // Transports default
    v.SetDefault("transports", cfg.Transports)
    // Action defaults
    v.SetDefault("action.result_ttl", cfg.Action.ResultTTL)
    v.SetDefault("action.status_period", cfg.Action.StatusPeriod)
    v.SetDefault("action.store_max_bytes", cfg.Action.StoreMaxBytes)
    // Record defaults
    v.SetDefault("record.enable", cfg.Record.Enable)
    v.SetDefault("record.codec", cfg.Record.Codec)
    v.SetDefault("record.path", cfg.Record.Path)

    // Choose config file
    if path == "" {
        // Allow override via env var
        if envPath := os.Getenv("MECHLINK_CONFIG"); envPath != "" {
            path = envPath
        }
    }

    if path != "" {
        v.SetConfigFile(path)
    } else {
        // Search common locations with base name `mechlink`
        v.SetConfigName("mechlink")
        v.AddConfigPath(".")
        v.AddConfigPath("./configs")
        if home, err := os.UserHomeDir(); err == nil {
            v.AddConfigPath(filepath.Join(home, ".mechlink"))
        }
    }

    // Read config file if present; if not found, continue with defaults/env
    if err := v.ReadInConfig(); err != nil {
        var viperConfigFileNotFound viper.ConfigFileNotFoundError
        if !errors.As(err, &viperConfigFileNotFound) {
            return nil, fmt.Errorf("read config: %w", err)
        }
    }

    if err := v.Unmarshal(&cfg); err != nil {
        return nil, fmt.Errorf("decode config: %w", err)
    }

    if err := cfg.validate(); err != nil {
        return nil, err
    }
    return cfg, nil
}

func (c *Config) validate() error {
    lvl := strings.ToLower(strings.TrimSpace(c.Log.Level))
    switch lvl {
    case "debug", "info", "warn", "warning", "error":
        // ok
    default:
        return fmt.Errorf("invalid log.level: %q", c.Log.Level)
    }

    if c.Log.Format == "" {
        c.Log.Format = "console"
    }
    if len(c.Log.Outputs) == 0 {
        c.Log.Outputs = []string{"stdout"}
    }
    if strings.TrimSpace(c.NodeID) == "" {
        c.NodeID = "node-1"
    }
    for i := range c.Transports {
        c.Transports[i].Kind = strings.ToLower(strings.TrimSpace(c.Transports[i].Kind))
        switch c.Transports[i].Kind {
        case "tcp", "quic", "mem":
        default:
            return fmt.Errorf("unknown transport kind: %q", c.Transports[i].Kind)
        }
    }
    if c.Action.ResultTTL <= 0 {
        c.Action.ResultTTL = 10 * time.Minute
    }
    if c.Action.StatusPeriod <= 0 {
        c.Action.StatusPeriod = time.Second
    }
    switch strings.ToLower(strings.TrimSpace(c.Record.Codec)) {
    case "", "json", "cbor":
    default:
        return fmt.Errorf("unknown record.codec: %q", c.Record.Codec)
    }
    return nil
}

// MustLoad is a convenience that panics on error.
func MustLoad(path string) *Config {
    cfg, err := Load(path)
    if err != nil {
        panic(err)
    }
    return cfg
}
