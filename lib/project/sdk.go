// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CrawleeVersionThreshold is the apify package version at which the
// JavaScript SDK moved its crawling code into Crawlee.
const CrawleeVersionThreshold = "3.0.0"

// CrawleePackages is the successor framework family. A project that
// depends on any of them is a Crawlee project.
var CrawleePackages = []string{
	"crawlee",
	"@crawlee/core",
	"@crawlee/puppeteer",
	"@crawlee/playwright",
	"@crawlee/cheerio",
	"@crawlee/jsdom",
	"@crawlee/linkedom",
	"@crawlee/http",
	"@crawlee/browser",
	"@crawlee/basic",
}

// sdkPackage is the legacy SDK's package name in both ecosystems.
const sdkPackage = "apify"

var crawleeThreshold = semver.MustParse(CrawleeVersionThreshold)

// UsesCrawlee reports whether any Crawlee package appears among the
// runtime dependencies of package.json, or, when there is no
// package.json, in requirements.txt.
func UsesCrawlee(projectRoot string) bool {
	if fileExists(filepath.Join(projectRoot, PackageManifestFile)) {
		manifest, err := ReadPackageManifest(projectRoot)
		if err != nil {
			return false
		}
		return manifestHasCrawlee(manifest)
	}
	requirements, err := ReadRequirements(projectRoot)
	if err != nil {
		return false
	}
	return requirementsHaveCrawlee(requirements)
}

// IsPreCrawleeSDK reports whether package.json depends on an apify
// version older than 3.0.0 and on no Crawlee package. A "*" constraint
// and constraints that do not parse as a version (after stripping one
// leading "~" or "^") are not applicable.
func IsPreCrawleeSDK(projectRoot string) bool {
	manifest, err := ReadPackageManifest(projectRoot)
	if err != nil {
		return false
	}
	if manifestHasCrawlee(manifest) {
		return false
	}
	constraint, ok := manifest.Dependency(sdkPackage)
	if !ok || constraint == "" || constraint == "*" {
		return false
	}
	constraint = strings.TrimPrefix(strings.TrimPrefix(constraint, "~"), "^")
	version, err := semver.StrictNewVersion(strings.TrimPrefix(strings.TrimSpace(constraint), "v"))
	if err != nil {
		return false
	}
	return version.LessThan(crawleeThreshold)
}

// IsLegacyPythonSDK reports whether requirements.txt lists the apify
// package and no Crawlee package.
func IsLegacyPythonSDK(projectRoot string) bool {
	requirements, err := ReadRequirements(projectRoot)
	if err != nil {
		return false
	}
	if requirementsHaveCrawlee(requirements) {
		return false
	}
	return requirements.Has(sdkPackage)
}

// UsesLegacyApifySDK applies the package.json rule when the project
// has one and the requirements.txt rule otherwise.
func UsesLegacyApifySDK(projectRoot string) bool {
	if fileExists(filepath.Join(projectRoot, PackageManifestFile)) {
		return IsPreCrawleeSDK(projectRoot)
	}
	return IsLegacyPythonSDK(projectRoot)
}

func manifestHasCrawlee(manifest *PackageManifest) bool {
	for _, name := range CrawleePackages {
		if _, ok := manifest.Dependency(name); ok {
			return true
		}
	}
	return false
}

func requirementsHaveCrawlee(requirements Requirements) bool {
	for _, name := range CrawleePackages {
		if requirements.Has(name) {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
