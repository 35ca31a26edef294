// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Stdin is a source of standard input for commands whose arguments or
// flags accept piped input.
type Stdin interface {
	io.Reader

	// Piped reports whether input is redirected (a pipe or a file)
	// rather than attached to an interactive terminal.
	Piped() bool
}

// ProcessStdin returns the process's standard input.
func ProcessStdin() Stdin {
	return fileStdin{file: os.Stdin}
}

type fileStdin struct {
	file *os.File
}

func (s fileStdin) Read(buffer []byte) (int, error) {
	return s.file.Read(buffer)
}

func (s fileStdin) Piped() bool {
	fd := int(s.file.Fd())
	if term.IsTerminal(fd) {
		return false
	}
	return isRedirected(fd)
}

// ReaderStdin wraps reader as always-piped input. Tests use it to feed
// fixed stdin contents.
func ReaderStdin(reader io.Reader) Stdin {
	return readerStdin{Reader: reader}
}

type readerStdin struct {
	io.Reader
}

func (readerStdin) Piped() bool { return true }

// NoStdin is input that is never piped.
var NoStdin Stdin = emptyStdin{}

type emptyStdin struct{}

func (emptyStdin) Read([]byte) (int, error) { return 0, io.EOF }
func (emptyStdin) Piped() bool              { return false }

// stdinBuffer reads piped input at most once per invocation.
type stdinBuffer struct {
	source Stdin
	data   []byte
	loaded bool
}

// load returns the full piped input. available is false when the
// source is not piped, in which case nothing is read.
func (b *stdinBuffer) load() (data []byte, available bool, err error) {
	if b.loaded {
		return b.data, true, nil
	}
	if b.source == nil || !b.source.Piped() {
		return nil, false, nil
	}
	data, err = io.ReadAll(b.source)
	if err != nil {
		return nil, false, &StdinReadError{Err: err}
	}
	b.data = data
	b.loaded = true
	return data, true, nil
}
