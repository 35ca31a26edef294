// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// ActorConfigPath is the actor specification file, relative to the
// project root.
var ActorConfigPath = filepath.Join(".actor", "actor.json")

// ActorConfig holds the .actor/actor.json fields the CLI reads.
type ActorConfig struct {
	ActorSpecification int               `json:"actorSpecification"`
	Name               string            `json:"name"`
	Version            string            `json:"version"`
	BuildTag           string            `json:"buildTag"`
	Environment        map[string]string `json:"environmentVariables"`
}

// ReadActorConfig reads .actor/actor.json in projectRoot. It returns
// (nil, nil) when the file does not exist.
func ReadActorConfig(projectRoot string) (*ActorConfig, error) {
	path := filepath.Join(projectRoot, ActorConfigPath)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var config ActorConfig
	if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &config, nil
}
