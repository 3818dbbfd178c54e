// Package batch translates whole documents, one line at a time or as a
// single unit.
package batch

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the number of distinct inputs remembered.
const DefaultCacheSize = 1024

// InputMode selects how input is split into translation units.
type InputMode string

const (
	InputModeLine InputMode = "line"
	InputModeFull InputMode = "full"
)

func (e *InputMode) String() string {
	return string(*e)
}

func (e *InputMode) Set(v string) error {
	switch v {
	case "line", "full":
		*e = InputMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of: line, full")
	}
}

func (e *InputMode) Type() string {
	return "InputMode"
}

// Result is one translated unit. Line is 1-based; it is always 1 in full
// mode.
type Result struct {
	Line   int    `json:"line"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

// TranslateFunc is one direction of the codec, e.g. Codec.EncodeText.
type TranslateFunc func(string) string

// Stats counts what a Translator did.
type Stats struct {
	Units     int
	CacheHits int
}

// Translator runs a TranslateFunc over documents and caches results of
// repeated units.
type Translator struct {
	translate TranslateFunc
	mode      InputMode
	lineLimit int
	cache     *lru.Cache[string, string]
	stats     Stats
}

type Option func(*Translator)

func WithInputMode(m InputMode) Option {
	return func(t *Translator) {
		t.mode = m
	}
}

// WithLineLengthLimit caps the length of a single line in line mode.
// Zero keeps bufio's default.
func WithLineLengthLimit(n int) Option {
	return func(t *Translator) {
		t.lineLimit = n
	}
}

func New(fn TranslateFunc, cacheSize int, opts ...Option) (*Translator, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create translation cache: %w", err)
	}
	t := &Translator{
		translate: fn,
		mode:      InputModeLine,
		cache:     cache,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Stats returns counters accumulated over every Run.
func (t *Translator) Stats() Stats {
	return t.stats
}

// Translate translates one unit, consulting the cache first.
func (t *Translator) Translate(in string) string {
	t.stats.Units++
	if out, ok := t.cache.Get(in); ok {
		t.stats.CacheHits++
		return out
	}
	out := t.translate(in)
	t.cache.Add(in, out)
	return out
}

// Run reads r until EOF and hands every result to emit in input order. It
// stops at the first error from emit, the reader or ctx.
func (t *Translator) Run(ctx context.Context, r io.Reader, emit func(Result) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := make(chan string, 1)
	errCh := make(chan error, 1)
	switch t.mode {
	case InputModeFull:
		go readFull(ctx, r, out, errCh)
	default:
		go readLines(ctx, r, out, errCh, t.lineLimit)
	}

	line := 0
	for data := range out {
		line++
		if err := emit(Result{Line: line, Input: data, Output: t.Translate(data)}); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	select {
	case err := <-errCh:
		return err
	default:
		return ctx.Err()
	}
}

func readLines(ctx context.Context, reader io.Reader, out chan<- string, errCh chan<- error, bufferSize int) {
	defer close(out)
	scanner := bufio.NewScanner(reader)
	if bufferSize > 0 {
		scanner.Buffer(make([]byte, bufferSize), bufferSize)
	}
	for scanner.Scan() {
		select {
		case out <- string(bytes.TrimSuffix(scanner.Bytes(), []byte{'\r'})):
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		errCh <- fmt.Errorf("scanning input failed: %w", err)
	}
}

func readFull(ctx context.Context, reader io.Reader, out chan<- string, errCh chan<- error) {
	defer close(out)
	data, err := io.ReadAll(reader)
	if err != nil {
		errCh <- fmt.Errorf("unable to read data: %w", err)
		return
	}
	select {
	case out <- string(data):
	case <-ctx.Done():
	}
}
