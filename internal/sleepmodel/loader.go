package sleepmodel

import "sync"

// Loader loads an artifact once per process and caches the outcome,
// failures included.
type Loader struct {
	source string
	once   func() (*Artifact, error)
}

// NewLoader loads from path, or from the embedded default when path is empty.
func NewLoader(path string) *Loader {
	if path == "" {
		return NewLoaderFunc("embedded", Default)
	}
	return NewLoaderFunc(path, func() (*Artifact, error) { return Load(path) })
}

// NewLoaderFunc wraps an arbitrary load function; source names it in diagnostics.
func NewLoaderFunc(source string, load func() (*Artifact, error)) *Loader {
	return &Loader{
		source: source,
		once:   sync.OnceValues(load),
	}
}

// Model returns the cached artifact, loading it on first use.
func (l *Loader) Model() (*Artifact, error) {
	return l.once()
}

// Source describes where the artifact comes from.
func (l *Loader) Source() string {
	return l.source
}
