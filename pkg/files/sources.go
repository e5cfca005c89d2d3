// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"io"
	"os"
)

type Source interface {
	Description() string
	RelativePath() string
	Bytes() ([]byte, error)
}

var _ = []Source{BytesSource{}, StdinSource{}, LocalSource{}, &CachedSource{}}

type BytesSource struct {
	path string
	data []byte
}

func NewBytesSource(path string, data []byte) BytesSource { return BytesSource{path, data} }

func (s BytesSource) Description() string    { return s.path }
func (s BytesSource) RelativePath() string   { return s.path }
func (s BytesSource) Bytes() ([]byte, error) { return s.data, nil }

type StdinSource struct {
	bytes []byte
	err   error
}

func NewStdinSource() StdinSource {
	// only read stdin once
	bs, err := io.ReadAll(os.Stdin)
	return StdinSource{bs, err}
}

func (s StdinSource) Description() string    { return "stdin.yml" }
func (s StdinSource) RelativePath() string   { return "stdin.yml" }
func (s StdinSource) Bytes() ([]byte, error) { return s.bytes, s.err }

type LocalSource struct {
	path string
}

func NewLocalSource(path string) LocalSource { return LocalSource{path} }

func (s LocalSource) Description() string  { return fmt.Sprintf("file '%s'", s.path) }
func (s LocalSource) RelativePath() string { return s.path }

func (s LocalSource) Bytes() ([]byte, error) { return os.ReadFile(s.path) }

type CachedSource struct {
	src Source

	bytesFetched bool
	bytes        []byte
	bytesErr     error
}

func NewCachedSource(src Source) *CachedSource { return &CachedSource{src: src} }

func (s *CachedSource) Description() string  { return s.src.Description() }
func (s *CachedSource) RelativePath() string { return s.src.RelativePath() }

func (s *CachedSource) Bytes() ([]byte, error) {
	if s.bytesFetched {
		return s.bytes, s.bytesErr
	}

	s.bytesFetched = true
	s.bytes, s.bytesErr = s.src.Bytes()

	return s.bytes, s.bytesErr
}
