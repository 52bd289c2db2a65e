package building

import (
	"sort"
	"strings"
	"sync"
)

// Factory constructs a builder for one format
type Factory func() Builder

// Registry maps format names to builder factories. Lookups are
// case-insensitive through normalization at registration and creation.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// NewDefaultRegistry returns a registry with every built-in format
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("html", func() Builder { return NewHTMLBuilder() })
	r.Register("pdf", func() Builder { return NewPDFBuilder() })
	r.Register("json", func() Builder { return NewJSONBuilder() })
	r.Register("markdown", func() Builder { return NewMarkdownBuilder() })
	return r
}

// Register adds or replaces the factory for a format
func (r *Registry) Register(format string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[normalizeFormat(format)] = factory
}

// Create instantiates the builder for a format. Unknown formats return an
// UnknownFormatError listing what is registered.
func (r *Registry) Create(format string) (Builder, error) {
	r.mu.RLock()
	factory, ok := r.factories[normalizeFormat(format)]
	r.mu.RUnlock()

	if !ok {
		return nil, &UnknownFormatError{Format: format, Available: r.Formats()}
	}
	return factory(), nil
}

// Formats returns the registered format names, sorted
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]string, 0, len(r.factories))
	for format := range r.factories {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}

// normalizeFormat lowercases the name and folds common aliases
func normalizeFormat(format string) string {
	switch format = strings.ToLower(format); format {
	case "md":
		return "markdown"
	case "htm":
		return "html"
	default:
		return format
	}
}
