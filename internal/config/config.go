package config

import (
	"os"
	"path/filepath"

	"github.com/On-Jun9/MediaSort/pkg/types"
	"gopkg.in/yaml.v3"
)

// Config is fixed for the lifetime of a run; the organizer never
// mutates it.
type Config struct {
	Source            string             `yaml:"source" json:"source"`
	Dest              string             `yaml:"dest" json:"dest"`
	ImageDirName      string             `yaml:"image_dir_name" json:"image_dir_name"`
	VideoDirName      string             `yaml:"video_dir_name" json:"video_dir_name"`
	UnknownDirName    string             `yaml:"unknown_dir_name" json:"unknown_dir_name"`
	ParseMode         types.ParseMode    `yaml:"parse_mode" json:"parse_mode"`
	TransferMode      types.TransferMode `yaml:"transfer_mode" json:"transfer_mode"`
	Recursive         bool               `yaml:"recursive" json:"recursive"`
	IncludeExtensions []string           `yaml:"include_extensions" json:"include_extensions"`
	SkipIdentical     bool               `yaml:"skip_identical" json:"skip_identical"`
	HashVerify        bool               `yaml:"hash_verify" json:"hash_verify"`
	DryRun            bool               `yaml:"dry_run" json:"dry_run"`
	LogFile           string             `yaml:"log_file" json:"log_file"`
	LogJSON           bool               `yaml:"log_json" json:"log_json"`
}

func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	stateDir := filepath.Join(homeDir, ".mediasort")

	return &Config{
		ImageDirName:   "images",
		VideoDirName:   "videos",
		UnknownDirName: "unknown",
		ParseMode:      types.ParseDeep,
		TransferMode:   types.TransferCopy,
		Recursive:      true,
		SkipIdentical:  false,
		HashVerify:     false,
		DryRun:         false,
		LogFile:        filepath.Join(stateDir, "mediasort.log"),
		LogJSON:        false,
	}
}

func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Source == "" {
		return &ValidationError{Field: "source", Message: "source path is required"}
	}
	if c.Dest == "" {
		return &ValidationError{Field: "dest", Message: "destination path is required"}
	}

	switch c.ParseMode {
	case "", types.ParseFast, types.ParseDeep:
	default:
		return &ValidationError{Field: "parse_mode", Message: "must be fast or deep"}
	}
	if c.ParseMode == "" {
		c.ParseMode = types.ParseDeep
	}

	switch c.TransferMode {
	case "", types.TransferCopy, types.TransferMove:
	default:
		return &ValidationError{Field: "transfer_mode", Message: "must be copy or move"}
	}
	if c.TransferMode == "" {
		c.TransferMode = types.TransferCopy
	}

	homeDir, _ := os.UserHomeDir()
	stateDir := filepath.Join(homeDir, ".mediasort")

	if c.ImageDirName == "" {
		c.ImageDirName = "images"
	}
	if c.VideoDirName == "" {
		c.VideoDirName = "videos"
	}
	if c.UnknownDirName == "" {
		c.UnknownDirName = "unknown"
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(stateDir, "mediasort.log")
	}

	return nil
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
