package config

import (
	"slices"
	"strings"

	"github.com/go-i2p/logger"
	"github.com/spf13/viper"
)

var log = logger.GetGoI2PLogger()

// EnvPrefix prefixes the environment variables that override ToolConfig,
// e.g. PKGDEFAULTS_DIR.
const EnvPrefix = "PKGDEFAULTS"

// Output formats understood by the command line tool.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// ToolConfig controls where the command line tool looks for the defaults
// file and how it prints them.
type ToolConfig struct {
	// Dir is the directory holding the defaults file.
	Dir string
	// File is the defaults file name inside Dir.
	File string
	// Output is either OutputText or OutputYAML.
	Output string
}

// NewToolViper returns a viper instance with the tool defaults applied and
// environment overrides enabled.
func NewToolViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	setToolDefaults(v)
	return v
}

func setToolDefaults(v *viper.Viper) {
	v.SetDefault("dir", SharedDir())
	v.SetDefault("file", DefaultsFileName)
	v.SetDefault("output", OutputText)
}

// ToolConfigFromViper reads a ToolConfig from v and validates it.
func ToolConfigFromViper(v *viper.Viper) (ToolConfig, error) {
	cfg := ToolConfig{
		Dir:    v.GetString("dir"),
		File:   v.GetString("file"),
		Output: strings.ToLower(v.GetString("output")),
	}
	if err := cfg.Validate(); err != nil {
		return ToolConfig{}, err
	}
	log.WithFields(logger.Fields{
		"at":     "config.ToolConfigFromViper",
		"reason": "tool_config_loaded",
		"dir":    cfg.Dir,
		"file":   cfg.File,
		"output": cfg.Output,
	}).Debug("loaded tool configuration")
	return cfg, nil
}

// Validate checks that every field is usable.
func (c ToolConfig) Validate() error {
	if c.Dir == "" {
		return newValidationError("dir must not be empty")
	}
	if c.File == "" {
		return newValidationError("file must not be empty")
	}
	if strings.ContainsAny(c.File, `/\`) {
		return newValidationError("file must be a bare file name, got " + c.File)
	}
	if !slices.Contains([]string{OutputText, OutputYAML}, c.Output) {
		return newValidationError("output must be text or yaml, got " + c.Output)
	}
	return nil
}

type validationError struct {
	message string
}

func newValidationError(message string) error {
	return &validationError{message: message}
}

func (e *validationError) Error() string {
	return "configuration validation failed: " + e.message
}
