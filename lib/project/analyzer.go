// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package project

// Type identifies the kind of project a directory holds.
type Type string

const (
	TypeScrapy   Type = "scrapy"
	TypeCrawlee  Type = "crawlee"
	TypeApifySDK Type = "apify_sdk"
	TypeUnknown  Type = "unknown"
)

// Analyzer decides whether a classification applies to a project
// directory. Implementations never return errors: a missing or
// unparseable manifest means false.
type Analyzer interface {
	IsApplicable(projectRoot string) bool
}

// AnalyzerFunc adapts a plain function to [Analyzer].
type AnalyzerFunc func(projectRoot string) bool

// IsApplicable calls f(projectRoot).
func (f AnalyzerFunc) IsApplicable(projectRoot string) bool {
	return f(projectRoot)
}

// Rule pairs a project type with the analyzer that recognizes it.
type Rule struct {
	Type     Type
	Analyzer Analyzer
}

// Chain is an ordered list of rules. Earlier rules win.
type Chain []Rule

// DefaultChain returns the classification rules in priority order.
func DefaultChain() Chain {
	return Chain{
		{Type: TypeScrapy, Analyzer: AnalyzerFunc(IsScrapyProject)},
		{Type: TypeCrawlee, Analyzer: AnalyzerFunc(UsesCrawlee)},
		{Type: TypeApifySDK, Analyzer: AnalyzerFunc(UsesLegacyApifySDK)},
	}
}

// First returns the type of the first applicable rule, or
// [TypeUnknown]. Evaluation stops at the first match.
func (c Chain) First(projectRoot string) Type {
	for _, rule := range c {
		if rule.Analyzer.IsApplicable(projectRoot) {
			return rule.Type
		}
	}
	return TypeUnknown
}

// All returns the types of every applicable rule in chain order, or
// just [TypeUnknown] when none applies.
func (c Chain) All(projectRoot string) []Type {
	var types []Type
	for _, rule := range c {
		if rule.Analyzer.IsApplicable(projectRoot) {
			types = append(types, rule.Type)
		}
	}
	if len(types) == 0 {
		return []Type{TypeUnknown}
	}
	return types
}
