package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/backmassage/astrosave/internal/domain"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/saves/wgs", "/saves/wgs"},
		{"single trailing slash", "/saves/wgs/", "/saves/wgs"},
		{"multiple trailing slashes", "/saves/wgs///", "/saves/wgs"},
		{"root path", "/", "/"},
		{"relative path", "wgs", "wgs"},
		{"relative with slash", "wgs/", "wgs"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_Platform(t *testing.T) {
	tests := []struct {
		name     string
		platform domain.Platform
		wantErr  bool
	}{
		{"microsoft is valid", domain.PlatformMicrosoft, false},
		{"steam is valid", domain.PlatformSteam, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "epic", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Platform = tt.platform
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RootPolicy(t *testing.T) {
	tests := []struct {
		name    string
		policy  domain.RootPolicy
		wantErr bool
	}{
		{"last is valid", domain.RootsLast, false},
		{"newest is valid", domain.RootsNewest, false},
		{"all is valid", domain.RootsAll, false},
		{"first is invalid", "first", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.RootPolicy = tt.policy
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ModeCombinations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"detect and check", func(c *Config) { c.Detect, c.CheckOnly = true, true }, true},
		{"folder without convert", func(c *Config) { c.SaveFolder = "/saves" }, true},
		{"folder with convert", func(c *Config) { c.SaveFolder, c.ConvertCmd = "/saves", "conv" }, false},
		{"folder with detect", func(c *Config) {
			c.SaveFolder, c.ConvertCmd, c.Detect = "/saves", "conv", true
		}, true},
		{"empty language", func(c *Config) { c.Lang = " " }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Platform != domain.PlatformMicrosoft {
		t.Errorf("default Platform = %q, want %q", cfg.Platform, domain.PlatformMicrosoft)
	}
	if cfg.RootPolicy != domain.RootsLast {
		t.Errorf("default RootPolicy = %q, want %q", cfg.RootPolicy, domain.RootsLast)
	}
	if cfg.BaseDirEnv != "LOCALAPPDATA" {
		t.Errorf("default BaseDirEnv = %q, want LOCALAPPDATA", cfg.BaseDirEnv)
	}
	if cfg.Detect || cfg.CheckOnly {
		t.Error("default Detect/CheckOnly should be false")
	}
}

func TestParseArgs(t *testing.T) {
	cfg := DefaultConfig()
	var out, errOut bytes.Buffer
	err := parseArgs(&cfg, "1.0.0", []string{
		"-p", "steam", "--roots", "newest", "--convert", "astroconv",
		"--lang", "fr", "--no-color", "-v", "/saves/SaveGames/",
	}, &out, &errOut)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if cfg.Platform != domain.PlatformSteam {
		t.Errorf("Platform = %q", cfg.Platform)
	}
	if cfg.RootPolicy != domain.RootsNewest {
		t.Errorf("RootPolicy = %q", cfg.RootPolicy)
	}
	if cfg.ConvertCmd != "astroconv" || cfg.Lang != "fr" || !cfg.Verbose {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q, want never", cfg.ColorMode)
	}
	if cfg.SaveFolder != "/saves/SaveGames" {
		t.Errorf("SaveFolder = %q", cfg.SaveFolder)
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad platform", []string{"--platform", "epic"}},
		{"bad roots", []string{"--roots", "first"}},
		{"unknown flag", []string{"--frobnicate"}},
		{"two folders", []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			var out, errOut bytes.Buffer
			if err := parseArgs(&cfg, "1.0.0", tt.args, &out, &errOut); err == nil {
				t.Errorf("parseArgs(%v) should fail", tt.args)
			}
		})
	}
}

func TestParseArgs_VersionAndHelp(t *testing.T) {
	cfg := DefaultConfig()
	var out, errOut bytes.Buffer
	err := parseArgs(&cfg, "1.2.3", []string{"--version"}, &out, &errOut)
	if !errors.Is(err, errExit) {
		t.Fatalf("--version: got %v, want errExit", err)
	}
	if out.String() != "astrosave v1.2.3\n" {
		t.Errorf("version output = %q", out.String())
	}

	out.Reset()
	errOut.Reset()
	err = parseArgs(&cfg, "1.2.3", []string{"-h"}, &out, &errOut)
	if !errors.Is(err, errExit) {
		t.Fatalf("-h: got %v, want errExit", err)
	}
	if !bytes.Contains(errOut.Bytes(), []byte("--platform")) {
		t.Errorf("help output missing flags: %s", errOut.String())
	}
}
