package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/On-Jun9/MediaSort/pkg/types"
)

// PresetManager manages configuration presets.
type PresetManager struct {
	presetsDir string
}

// NewPresetManager creates a new preset manager.
func NewPresetManager() (*PresetManager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return newPresetManagerAt(filepath.Join(homeDir, ".mediasort", "presets"))
}

func newPresetManagerAt(dir string) (*PresetManager, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create presets directory: %w", err)
	}
	return &PresetManager{presetsDir: dir}, nil
}

// ConfigToPreset converts a Config to a ConfigPreset.
func ConfigToPreset(cfg *Config, name, description string) *types.ConfigPreset {
	return &types.ConfigPreset{
		Name:              name,
		Description:       description,
		Source:            cfg.Source,
		Dest:              cfg.Dest,
		ImageDirName:      cfg.ImageDirName,
		VideoDirName:      cfg.VideoDirName,
		UnknownDirName:    cfg.UnknownDirName,
		ParseMode:         cfg.ParseMode,
		TransferMode:      cfg.TransferMode,
		Recursive:         cfg.Recursive,
		IncludeExtensions: cfg.IncludeExtensions,
		SkipIdentical:     cfg.SkipIdentical,
		HashVerify:        cfg.HashVerify,
		CreatedAt:         time.Now(),
	}
}

// PresetToConfig converts a ConfigPreset to a Config.
func PresetToConfig(preset *types.ConfigPreset) *Config {
	cfg := DefaultConfig()
	cfg.Source = preset.Source
	cfg.Dest = preset.Dest
	cfg.ImageDirName = preset.ImageDirName
	cfg.VideoDirName = preset.VideoDirName
	cfg.UnknownDirName = preset.UnknownDirName
	cfg.ParseMode = preset.ParseMode
	cfg.TransferMode = preset.TransferMode
	cfg.Recursive = preset.Recursive
	cfg.IncludeExtensions = preset.IncludeExtensions
	cfg.SkipIdentical = preset.SkipIdentical
	cfg.HashVerify = preset.HashVerify
	return cfg
}

func (pm *PresetManager) presetPath(name string) string {
	return filepath.Join(pm.presetsDir, sanitizeName(name)+".json")
}

func (pm *PresetManager) SavePreset(preset *types.ConfigPreset) error {
	if preset.Name == "" {
		return &ValidationError{Field: "name", Message: "preset name is required"}
	}

	data, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(pm.presetPath(preset.Name), data, 0644)
}

func (pm *PresetManager) LoadPreset(name string) (*types.ConfigPreset, error) {
	data, err := os.ReadFile(pm.presetPath(name))
	if err != nil {
		return nil, fmt.Errorf("preset %q not found: %w", name, err)
	}

	var preset types.ConfigPreset
	if err := json.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("failed to parse preset %q: %w", name, err)
	}

	return &preset, nil
}

func (pm *PresetManager) ListPresets() ([]*types.ConfigPreset, error) {
	entries, err := os.ReadDir(pm.presetsDir)
	if err != nil {
		return nil, err
	}

	var presets []*types.ConfigPreset
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(pm.presetsDir, entry.Name()))
		if err != nil {
			continue
		}

		var preset types.ConfigPreset
		if err := json.Unmarshal(data, &preset); err != nil {
			continue
		}
		presets = append(presets, &preset)
	}

	return presets, nil
}

func (pm *PresetManager) DeletePreset(name string) error {
	return os.Remove(pm.presetPath(name))
}

// sanitizeName keeps preset filenames inside the presets directory.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, string(os.PathSeparator), "-")
	name = strings.ReplaceAll(name, "..", "-")
	return name
}
