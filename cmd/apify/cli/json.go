// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"reflect"

	"github.com/alecthomas/chroma/v2/quick"
	"golang.org/x/term"
)

// JSONFlag is the shared --json flag. Commands that support JSON
// output add it to their Flags and call [EmitJSON] in Run:
//
//	if done, err := cli.EmitJSON(invocation, stdout, result); done {
//	    return err
//	}
//	// ... text formatting ...
func JSONFlag() Flag {
	return BooleanFlag("json", BooleanFlagOptions{Description: "Format the command output as JSON."})
}

// EmitJSON writes result as indented JSON when --json is set.
// Returns (true, nil) on success, (true, err) on write failure, or
// (false, nil) when --json is not set and the caller should proceed
// with text formatting.
//
// Nil slices are normalized to empty slices before serialization, so
// callers never need to guard against null JSON output.
func EmitJSON(invocation *Invocation, writer io.Writer, result any) (bool, error) {
	if !invocation.Bool("json") {
		return false, nil
	}
	return true, WriteJSON(writer, normalizeNilSlice(result))
}

// WriteJSON marshals value as indented JSON and writes it to writer.
// When writer is a terminal the output is syntax-highlighted.
func WriteJSON(writer io.Writer, value any) error {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return err
	}
	if isTerminalWriter(writer) {
		var highlighted bytes.Buffer
		if err := quick.Highlight(&highlighted, buffer.String(), "json", "terminal256", "monokai"); err == nil {
			_, err := writer.Write(highlighted.Bytes())
			return err
		}
	}
	_, err := writer.Write(buffer.Bytes())
	return err
}

func isTerminalWriter(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// normalizeNilSlice returns an empty slice of the same type if value
// is a nil slice, so that JSON serialization produces [] instead of
// null. Returns value unchanged for all other types.
func normalizeNilSlice(value any) any {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Slice && v.IsNil() {
		return reflect.MakeSlice(v.Type(), 0, 0).Interface()
	}
	return value
}
