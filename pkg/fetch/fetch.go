// Package fetch resolves resource URIs to raw bytes for image elements.
//
// A Resolver turns one URI into the bytes behind it. SchemeMux routes by
// URI scheme so documents can mix file, http(s), data and s3 references.
// Default is a mux covering the schemes that need no credentials.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrUnsupportedScheme is returned when no resolver handles a URI's scheme.
var ErrUnsupportedScheme = errors.New("fetch: unsupported scheme")

// ErrTooLarge is returned when a resource exceeds a resolver's size limit.
var ErrTooLarge = errors.New("fetch: resource too large")

// DefaultMaxSize is the size limit resolvers use when none is configured.
const DefaultMaxSize = 16 << 20

// Resolver fetches the bytes behind a resource URI.
type Resolver interface {
	Fetch(ctx context.Context, uri string) ([]byte, error)
}

// SchemeMux routes Fetch calls to per-scheme resolvers. URIs without a
// scheme are treated as file paths.
type SchemeMux struct {
	mu        sync.RWMutex
	resolvers map[string]Resolver
}

// NewSchemeMux returns a mux with no resolvers registered.
func NewSchemeMux() *SchemeMux {
	return &SchemeMux{resolvers: make(map[string]Resolver)}
}

// Register routes the given scheme (lowercase, no colon) to r, replacing
// any previous registration.
func (m *SchemeMux) Register(scheme string, r Resolver) {
	m.mu.Lock()
	m.resolvers[scheme] = r
	m.mu.Unlock()
}

// Fetch dispatches to the resolver registered for the URI's scheme.
func (m *SchemeMux) Fetch(ctx context.Context, uri string) ([]byte, error) {
	scheme := uriScheme(uri)
	if scheme == "" {
		scheme = "file"
	}
	m.mu.RLock()
	r, ok := m.resolvers[scheme]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
	return r.Fetch(ctx, uri)
}

// uriScheme extracts the scheme without parsing the whole URI; data URIs
// in particular are not valid net/url input in all forms.
func uriScheme(uri string) string {
	for i := 0; i < len(uri); i++ {
		switch uri[i] {
		case ':':
			return strings.ToLower(uri[:i])
		case '/', '?', '#':
			return ""
		}
	}
	return ""
}

// Default resolves file, http, https and data URIs with DefaultMaxSize
// limits. Schemes needing credentials (s3) must be registered on a mux
// by the caller.
var Default Resolver = func() *SchemeMux {
	m := NewSchemeMux()
	m.Register("file", &FileResolver{})
	web := &HTTPResolver{}
	m.Register("http", web)
	m.Register("https", web)
	m.Register("data", &DataResolver{})
	return m
}()

// readAll reads r to the end, failing with ErrTooLarge past max bytes.
// A non-positive max applies DefaultMaxSize.
func readAll(r io.Reader, max int64) ([]byte, error) {
	if max <= 0 {
		max = DefaultMaxSize
	}
	b, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > max {
		return nil, ErrTooLarge
	}
	return b, nil
}
