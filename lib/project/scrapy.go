// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/go-ini/ini"
)

// ScrapyConfigFile marks a Scrapy project root.
const ScrapyConfigFile = "scrapy.cfg"

// IsScrapyProject reports whether projectRoot contains scrapy.cfg.
func IsScrapyProject(projectRoot string) bool {
	return fileExists(filepath.Join(projectRoot, ScrapyConfigFile))
}

// ScrapyConfig holds the scrapy.cfg values the CLI uses.
type ScrapyConfig struct {
	// SettingsModule is [settings] default, e.g. "books.settings".
	SettingsModule string

	// MainPyLocation is [apify] mainpy_location, the directory of the
	// wrapper's __main__.py, or empty when the project is not wrapped.
	MainPyLocation string
}

// ReadScrapyConfig parses scrapy.cfg in projectRoot.
func ReadScrapyConfig(projectRoot string) (*ScrapyConfig, error) {
	path := filepath.Join(projectRoot, ScrapyConfigFile)
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	config := &ScrapyConfig{
		SettingsModule: file.Section("settings").Key("default").String(),
	}
	if apify := file.Section("apify"); apify.HasKey("mainpy_location") {
		config.MainPyLocation = apify.Key("mainpy_location").String()
	}
	return config, nil
}

// BotName is the first segment of the settings module, which Scrapy
// project templates use as BOT_NAME.
func (c *ScrapyConfig) BotName() string {
	name, _, _ := strings.Cut(c.SettingsModule, ".")
	return name
}

// SpiderModules returns the conventional spider module for the bot.
func (c *ScrapyConfig) SpiderModules() []string {
	if c.BotName() == "" {
		return nil
	}
	return []string{c.BotName() + ".spiders"}
}

// Spiders scans every spider module under projectRoot and returns the
// classes declared in its Python files, ordered by file name.
func (c *ScrapyConfig) Spiders(projectRoot string) ([]Spider, error) {
	var spiders []Spider
	for _, module := range c.SpiderModules() {
		directory := filepath.Join(projectRoot, filepath.FromSlash(strings.ReplaceAll(module, ".", "/")))
		entries, err := os.ReadDir(directory)
		if err != nil {
			return nil, fmt.Errorf("listing spider module %s: %w", module, err)
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !strings.HasSuffix(name, ".py") || name == "__init__.py" {
				continue
			}
			found, err := ScanSpiders(filepath.Join(directory, name))
			if err != nil {
				return nil, err
			}
			spiders = append(spiders, found...)
		}
	}
	return spiders, nil
}

// Spider is a class declared in a spider module.
type Spider struct {
	ClassName string `json:"class_name"`
	Path      string `json:"path"`
}

var classPattern = regexp.MustCompile(`\bclass\s+(\w+)`)

// ScanSpiders returns every class declared in the Python file at path,
// in file order. Detection is textual: every "class Name" counts.
func ScanSpiders(path string) ([]Spider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var spiders []Spider
	for _, match := range classPattern.FindAllSubmatch(data, -1) {
		spiders = append(spiders, Spider{ClassName: string(match[1]), Path: path})
	}
	return spiders, nil
}
