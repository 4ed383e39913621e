package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultConfigName = ".loxrc.yaml"

// config holds the driver settings read from the YAML config file. Every
// field is optional.
type config struct {
	Prompt          string `yaml:"prompt"`
	Continuation    string `yaml:"continuation"`
	HistoryFile     string `yaml:"history_file"`
	Color           bool   `yaml:"color"`
	InteractiveEcho *bool  `yaml:"interactive_echo"`
}

func defaultConfig() *config {
	echo := true
	return &config{
		Prompt:          "> ",
		Continuation:    ". ",
		HistoryFile:     "~/.lox_history",
		InteractiveEcho: &echo,
	}
}

// loadConfig reads path over the defaults. With an empty path it tries
// ~/.loxrc.yaml and silently falls back to the defaults when that is absent.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg.finish(), nil
		}
		path = filepath.Join(home, defaultConfigName)
	}

	file, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg.finish(), nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg.finish(), nil
}

// finish fills in what the file explicitly cleared.
func (c *config) finish() *config {
	if c.InteractiveEcho == nil {
		c.InteractiveEcho = defaultConfig().InteractiveEcho
	}
	c.HistoryFile = expandHome(c.HistoryFile)
	return c
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
