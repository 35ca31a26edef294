// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/apify/apify-cli/cmd/apify/cli"
)

func TestBuildJSON(t *testing.T) {
	tests := []struct {
		name    string
		results []Result
		ok      bool
	}{
		{"empty", nil, true},
		{"warnings pass", []Result{Pass("a", "ok"), Warn("b", "meh"), Skip("c", "skipped")}, true},
		{"failure", []Result{Pass("a", "ok"), Fail("b", "broken")}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			output := BuildJSON(test.results)
			if output.OK != test.ok {
				t.Errorf("OK = %v, want %v", output.OK, test.ok)
			}
			if output.Checks == nil {
				t.Error("Checks is nil, want an empty slice")
			}
		})
	}
}

func TestPrintChecklist(t *testing.T) {
	var buffer bytes.Buffer
	err := PrintChecklist(&buffer, []Result{
		Pass("JavaScript runtime", "node 20.11.0"),
		FailWithHint("Python runtime", "not found", "install Python 3.9 or newer"),
	})
	if got := cli.ExitCode(err); got != 1 {
		t.Errorf("ExitCode() = %d, want 1", got)
	}
	output := buffer.String()
	for _, want := range []string{
		"[PASS]  JavaScript runtime",
		"[FAIL]  Python runtime",
		"hint: install Python 3.9 or newer",
		"Some checks failed.",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("checklist missing %q:\n%s", want, output)
		}
	}

	buffer.Reset()
	if err := PrintChecklist(&buffer, []Result{Warn("Project type", "unknown")}); err != nil {
		t.Errorf("PrintChecklist() with only warnings error: %v", err)
	}
	if !strings.Contains(buffer.String(), "All checks passed.") {
		t.Errorf("checklist missing the success line:\n%s", buffer.String())
	}
}
