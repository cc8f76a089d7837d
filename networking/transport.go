package networking

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"sync"
)

// Transport loads the raw payload at a resolved location
type Transport interface {
	Fetch(ctx context.Context, target *url.URL) ([]byte, error)
}

// TransportFunc adapts a function to Transport
type TransportFunc func(ctx context.Context, target *url.URL) ([]byte, error)

// Fetch implements Transport
func (f TransportFunc) Fetch(ctx context.Context, target *url.URL) ([]byte, error) {
	return f(ctx, target)
}

// MuxTransport routes a fetch to the transport registered for the target's scheme
type MuxTransport struct {
	mu     sync.RWMutex
	routes map[string]Transport
}

// NewMuxTransport creates an empty scheme router
func NewMuxTransport() *MuxTransport {
	return &MuxTransport{routes: make(map[string]Transport)}
}

// Handle registers t for one or more schemes
func (m *MuxTransport) Handle(t Transport, schemes ...string) *MuxTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range schemes {
		m.routes[strings.ToLower(s)] = t
	}
	return m
}

// Fetch implements Transport
func (m *MuxTransport) Fetch(ctx context.Context, target *url.URL) ([]byte, error) {
	m.mu.RLock()
	t, ok := m.routes[strings.ToLower(target.Scheme)]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no transport registered for scheme %q", target.Scheme)
	}
	return t.Fetch(ctx, target)
}

// FSTransport reads payloads from a file system, using the target path as the file name
type FSTransport struct {
	fsys fs.FS
}

// NewFSTransport creates a transport over fsys
func NewFSTransport(fsys fs.FS) *FSTransport {
	return &FSTransport{fsys: fsys}
}

// Fetch implements Transport
func (t *FSTransport) Fetch(ctx context.Context, target *url.URL) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := strings.TrimPrefix(target.Path, "/")
	if name == "" {
		name = target.Opaque
	}
	data, err := fs.ReadFile(t.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}
