// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package doctor

// Status is the outcome of a single check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
	StatusSkip Status = "skip"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

// Pass creates a passing check result.
func Pass(name, message string) Result {
	return Result{Name: name, Status: StatusPass, Message: message}
}

// Fail creates a failing check result.
func Fail(name, message string) Result {
	return Result{Name: name, Status: StatusFail, Message: message}
}

// FailWithHint creates a failing check result with a suggested remedy.
func FailWithHint(name, message, hint string) Result {
	return Result{Name: name, Status: StatusFail, Message: message, Hint: hint}
}

// Warn creates a warning check result. Warnings do not cause a
// non-zero exit.
func Warn(name, message string) Result {
	return Result{Name: name, Status: StatusWarn, Message: message}
}

// Skip creates a skipped check result, used when a prerequisite check
// failed (no runtime means no package manager check).
func Skip(name, message string) Result {
	return Result{Name: name, Status: StatusSkip, Message: message}
}

// JSONOutput is the JSON output structure for doctor commands.
type JSONOutput struct {
	Checks []Result `json:"checks"`
	OK     bool     `json:"ok"`
}

// BuildJSON aggregates results. OK is false when any check failed.
func BuildJSON(results []Result) JSONOutput {
	output := JSONOutput{Checks: results, OK: true}
	if output.Checks == nil {
		output.Checks = []Result{}
	}
	for _, result := range results {
		if result.Status == StatusFail {
			output.OK = false
		}
	}
	return output
}
