// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"context"
	"errors"
	"time"
)

// ErrNotConfigured is returned by [Unconfigured] for every call.
var ErrNotConfigured = errors.New("platform client is not configured; log in with 'apify login' first")

// ErrNotFound is returned when a named resource does not exist.
var ErrNotFound = errors.New("resource not found")

// Actor is a deployable unit of code.
type Actor struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Username   string    `json:"username"`
	Title      string    `json:"title,omitempty"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// Build is one build of an actor version.
type Build struct {
	ID            string    `json:"id"`
	ActorID       string    `json:"actId"`
	BuildNumber   string    `json:"buildNumber"`
	Status        string    `json:"status"`
	StartedAt     time.Time `json:"startedAt"`
	FinishedAt    time.Time `json:"finishedAt,omitzero"`
	VersionNumber string    `json:"versionNumber,omitempty"`
}

// Dataset is a stored table of results.
type Dataset struct {
	ID         string    `json:"id"`
	Name       string    `json:"name,omitempty"`
	ItemCount  int       `json:"itemCount"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// KeyValueStore is a stored record collection.
type KeyValueStore struct {
	ID         string    `json:"id"`
	Name       string    `json:"name,omitempty"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// ListOptions pages list calls.
type ListOptions struct {
	Offset     int
	Limit      int
	Descending bool
}

// Client is the platform API surface the CLI consumes.
type Client interface {
	ListActors(ctx context.Context, options ListOptions) ([]Actor, error)
	GetActor(ctx context.Context, actorID string) (*Actor, error)
	ListBuilds(ctx context.Context, actorID string, options ListOptions) ([]Build, error)
	GetBuild(ctx context.Context, buildID string) (*Build, error)
	ListDatasets(ctx context.Context, options ListOptions) ([]Dataset, error)
	GetDataset(ctx context.Context, datasetID string) (*Dataset, error)
	ListKeyValueStores(ctx context.Context, options ListOptions) ([]KeyValueStore, error)
	GetKeyValueStore(ctx context.Context, storeID string) (*KeyValueStore, error)
}

// Unconfigured is the [Client] used when no platform client is wired.
type Unconfigured struct{}

func (Unconfigured) ListActors(context.Context, ListOptions) ([]Actor, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) GetActor(context.Context, string) (*Actor, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) ListBuilds(context.Context, string, ListOptions) ([]Build, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) GetBuild(context.Context, string) (*Build, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) ListDatasets(context.Context, ListOptions) ([]Dataset, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) GetDataset(context.Context, string) (*Dataset, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) ListKeyValueStores(context.Context, ListOptions) ([]KeyValueStore, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) GetKeyValueStore(context.Context, string) (*KeyValueStore, error) {
	return nil, ErrNotConfigured
}
