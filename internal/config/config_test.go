package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/On-Jun9/MediaSort/pkg/types"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ImageDirName != "images" || cfg.VideoDirName != "videos" || cfg.UnknownDirName != "unknown" {
		t.Errorf("unexpected category names: %s/%s/%s", cfg.ImageDirName, cfg.VideoDirName, cfg.UnknownDirName)
	}
	if cfg.ParseMode != types.ParseDeep {
		t.Errorf("expected deep parse mode default, got %s", cfg.ParseMode)
	}
	if cfg.TransferMode != types.TransferCopy {
		t.Errorf("expected copy transfer default, got %s", cfg.TransferMode)
	}
	if !cfg.Recursive {
		t.Error("expected recursive default")
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `
source: /sdcard/DCIM
dest: /nas/sorted
parse_mode: fast
transfer_mode: move
image_dir_name: pics
recursive: false
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Source != "/sdcard/DCIM" {
		t.Errorf("unexpected source: %s", cfg.Source)
	}
	if cfg.ParseMode != types.ParseFast {
		t.Errorf("unexpected parse mode: %s", cfg.ParseMode)
	}
	if cfg.TransferMode != types.TransferMove {
		t.Errorf("unexpected transfer mode: %s", cfg.TransferMode)
	}
	if cfg.ImageDirName != "pics" {
		t.Errorf("unexpected image dir: %s", cfg.ImageDirName)
	}
	if cfg.Recursive {
		t.Error("expected recursive disabled")
	}
	// Unset fields keep their defaults.
	if cfg.VideoDirName != "videos" {
		t.Errorf("expected default video dir, got %s", cfg.VideoDirName)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if validationErr.Field != "source" {
		t.Errorf("expected source error first, got %s", validationErr.Field)
	}

	cfg.Source = "/src"
	err = cfg.Validate()
	if !errors.As(err, &validationErr) || validationErr.Field != "dest" {
		t.Fatalf("expected dest error, got %v", err)
	}
}

func TestValidate_FillsEmptyNames(t *testing.T) {
	cfg := &Config{Source: "/src", Dest: "/dest"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ImageDirName != "images" || cfg.VideoDirName != "videos" || cfg.UnknownDirName != "unknown" {
		t.Errorf("empty names not defaulted: %s/%s/%s", cfg.ImageDirName, cfg.VideoDirName, cfg.UnknownDirName)
	}
	if cfg.ParseMode != types.ParseDeep {
		t.Errorf("empty parse mode not defaulted: %s", cfg.ParseMode)
	}
	if cfg.TransferMode != types.TransferCopy {
		t.Errorf("empty transfer mode not defaulted: %s", cfg.TransferMode)
	}
}

func TestValidate_RejectsUnknownModes(t *testing.T) {
	cfg := &Config{Source: "/src", Dest: "/dest", ParseMode: "turbo"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown parse mode")
	}

	cfg = &Config{Source: "/src", Dest: "/dest", TransferMode: "teleport"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown transfer mode")
	}
}
