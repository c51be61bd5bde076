// Package importer reads expense lists from files for the CLI.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/autosave-dev/autosave/internal/model"
)

// Parser converts an input document into expenses.
type Parser interface {
	Parse(r io.Reader) ([]model.Expense, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats lists the registered format names in order.
func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.parsers))
	for k := range r.parsers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&JSONParser{})
	r.Register(&CSVParser{})
	r.Register(&ChaseParser{})
	return r
}

// DetectFormat picks a format from the file extension. Stdin and unknown
// extensions are treated as JSON.
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "csv"
	default:
		return "json"
	}
}

// Read parses r with the named format.
func (r *Registry) Read(in io.Reader, format string) ([]model.Expense, error) {
	p := r.Get(format)
	if p == nil {
		return nil, fmt.Errorf("unknown input format %q (available: %s)", format, strings.Join(r.Formats(), ", "))
	}
	expenses, err := p.Parse(in)
	if err != nil {
		return nil, fmt.Errorf("parsing %s input: %w", p.Format(), err)
	}
	return expenses, nil
}

// ReadFile parses path, or stdin when path is empty or "-". An empty format
// is detected from the extension.
func (r *Registry) ReadFile(path, format string, stdin io.Reader) ([]model.Expense, error) {
	if format == "" {
		format = DetectFormat(path)
	}
	if path == "" || path == "-" {
		return r.Read(stdin, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return r.Read(f, format)
}
